package synqserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	analyticsembedded "github.com/SHWFT/synqchain/internal/domains/analytics/adapters/embedded"
	analyticsapp "github.com/SHWFT/synqchain/internal/domains/analytics/application"
	authapp "github.com/SHWFT/synqchain/internal/domains/auth/application"
	projectsmemory "github.com/SHWFT/synqchain/internal/domains/projects/adapters/memory"
	projectsapp "github.com/SHWFT/synqchain/internal/domains/projects/application"
	purchasingmemory "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/memory"
	purchasingworkflows "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/workflows"
	purchasingapp "github.com/SHWFT/synqchain/internal/domains/purchasing/application"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	poRepo := purchasingmemory.NewRepository()
	projectRepo := projectsmemory.NewRepository()
	purchasingService := purchasingapp.NewService(poRepo)
	analyticsService := analyticsapp.NewService(analyticsembedded.New(poRepo, projectRepo))

	handlers := ApiHandleFunctions{
		PurchaseOrderAPI: NewPurchaseOrderAPI(purchasingService, purchasingworkflows.NewInlineSubmission(purchasingService)),
		ProjectAPI:       NewProjectAPI(projectsapp.NewService(projectRepo)),
		AnalyticsAPI:     NewAnalyticsAPI(analyticsService),
		AuthAPI:          NewAuthAPI(authapp.NewService()),
	}
	return NewRouterWithGinEngine(gin.New(), handlers)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestPurchaseOrderLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/po", map[string]any{
		"id": "p1", "vendor": "Initech", "amount": 1200.5, "currency": "USD",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "DRAFT", decodeBody(t, rec)["status"])

	rec = doJSON(t, router, http.MethodPost, "/po/p1/submit", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "PENDING_APPROVAL", decodeBody(t, rec)["status"])

	rec = doJSON(t, router, http.MethodPost, "/po/p1/submit", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeBody(t, rec)["error"], "only DRAFT purchase orders can be submitted")

	rec = doJSON(t, router, http.MethodPost, "/po/p1/approve", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "APPROVED", decodeBody(t, rec)["status"])

	rec = doJSON(t, router, http.MethodGet, "/po/p1/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Items []struct {
			Type string `json:"type"`
			POID string `json:"poId"`
		} `json:"items"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	require.Equal(t, "SUBMITTED", page.Items[0].Type)
	require.Equal(t, "APPROVED", page.Items[1].Type)
	require.Equal(t, "p1", page.Items[0].POID)
}

func TestApprove_BeforeSubmitReturns400(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/po", map[string]any{"id": "p1", "vendor": "Initech", "amount": 10, "currency": "USD"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/po/p1/approve", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeBody(t, rec)["error"], "only PENDING_APPROVAL purchase orders can be approved")
}

func TestTransitions_MissingPurchaseOrderReturns404(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/po/ghost/submit", "/po/ghost/approve"} {
		rec := doJSON(t, router, http.MethodPost, path, map[string]any{})
		require.Equal(t, http.StatusNotFound, rec.Code, path)
		require.NotEmpty(t, decodeBody(t, rec)["error"])
	}

	rec := doJSON(t, router, http.MethodGet, "/po/ghost", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePurchaseOrder_ValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/po", map[string]any{"amount": 10, "currency": "USD"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeBody(t, rec)["error"], "vendor")
}

func TestEvents_MissingPurchaseOrderYieldsEmptyPage(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/po/ghost/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, float64(0), body["total"])
	require.Empty(t, body["items"])
}

func TestEvents_MalformedPagingParamsDefault(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/po", map[string]any{"id": "p1", "vendor": "Initech", "amount": 10, "currency": "USD"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/po/p1/submit", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/po/p1/events?page=abc&pageSize=-5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, float64(1), body["page"])
	require.Equal(t, float64(20), body["pageSize"])
}

func TestProjects_CreateAndList(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/projects", map[string]any{"name": "Warehouse revamp"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "in-progress", body["status"])
	require.NotEmpty(t, body["id"])

	rec = doJSON(t, router, http.MethodPost, "/projects", map[string]any{"budget": 100})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeBody(t, rec)["error"], "name is required")

	rec = doJSON(t, router, http.MethodGet, "/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var projects []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
}

func TestAnalytics_ActivityAndKPIs(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/po", map[string]any{"id": "p1", "vendor": "Initech", "amount": 150, "currency": "USD"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/analytics/kpis", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, float64(150), body["totalSpend"])
	require.Equal(t, float64(1), body["openPurchaseOrders"])

	rec = doJSON(t, router, http.MethodGet, "/analytics/activity", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
}

func TestERPHealth_EmbeddedIsHealthy(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/erps/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["healthy"])
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "synqchain-api", body["service"])

	rec = doJSON(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestAuthMe_RequiresSessionCookie(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "not authenticated", decodeBody(t, rec)["error"])

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: authapp.SessionCookie, Value: "1"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "demo@synqchain.local", decodeBody(t, rec)["email"])

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: authapp.SessionCookie, Value: "0"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthLogout_ClearsCookie(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["success"])

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == authapp.SessionCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	require.True(t, cleared)
}

func TestSubmit_EmptyBodyAllowed(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/po", map[string]any{"id": "p1", "vendor": "Initech", "amount": 10, "currency": "USD"})
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/po/p1/submit", strings.NewReader(""))
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
}
