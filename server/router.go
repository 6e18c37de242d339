package synqserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a collection of Route.
type Routes []Route

// ApiHandleFunctions groups the per-context handler sets the router serves.
type ApiHandleFunctions struct {
	PurchaseOrderAPI PurchaseOrderAPI
	ProjectAPI       ProjectAPI
	AnalyticsAPI     AnalyticsAPI
	AuthAPI          AuthAPI
}

// NewRouter returns a new gin engine with all API routes attached.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine attaches all API routes to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{
			Name:        "CreatePurchaseOrder",
			Method:      http.MethodPost,
			Pattern:     "/po",
			HandlerFunc: handleFunctions.PurchaseOrderAPI.CreatePurchaseOrder,
		},
		{
			Name:        "ListPurchaseOrders",
			Method:      http.MethodGet,
			Pattern:     "/po",
			HandlerFunc: handleFunctions.PurchaseOrderAPI.ListPurchaseOrders,
		},
		{
			Name:        "GetPurchaseOrderById",
			Method:      http.MethodGet,
			Pattern:     "/po/:id",
			HandlerFunc: handleFunctions.PurchaseOrderAPI.GetPurchaseOrderById,
		},
		{
			Name:        "SubmitPurchaseOrder",
			Method:      http.MethodPost,
			Pattern:     "/po/:id/submit",
			HandlerFunc: handleFunctions.PurchaseOrderAPI.SubmitPurchaseOrder,
		},
		{
			Name:        "ApprovePurchaseOrder",
			Method:      http.MethodPost,
			Pattern:     "/po/:id/approve",
			HandlerFunc: handleFunctions.PurchaseOrderAPI.ApprovePurchaseOrder,
		},
		{
			Name:        "GetPurchaseOrderEvents",
			Method:      http.MethodGet,
			Pattern:     "/po/:id/events",
			HandlerFunc: handleFunctions.PurchaseOrderAPI.GetPurchaseOrderEvents,
		},
		{
			Name:        "CreateProject",
			Method:      http.MethodPost,
			Pattern:     "/projects",
			HandlerFunc: handleFunctions.ProjectAPI.CreateProject,
		},
		{
			Name:        "ListProjects",
			Method:      http.MethodGet,
			Pattern:     "/projects",
			HandlerFunc: handleFunctions.ProjectAPI.ListProjects,
		},
		{
			Name:        "GetActivity",
			Method:      http.MethodGet,
			Pattern:     "/analytics/activity",
			HandlerFunc: handleFunctions.AnalyticsAPI.GetActivity,
		},
		{
			Name:        "GetKPIs",
			Method:      http.MethodGet,
			Pattern:     "/analytics/kpis",
			HandlerFunc: handleFunctions.AnalyticsAPI.GetKPIs,
		},
		{
			Name:        "GetERPHealth",
			Method:      http.MethodGet,
			Pattern:     "/erps/health",
			HandlerFunc: handleFunctions.AnalyticsAPI.GetERPHealth,
		},
		{
			Name:        "GetHealth",
			Method:      http.MethodGet,
			Pattern:     "/health",
			HandlerFunc: handleFunctions.AnalyticsAPI.GetHealth,
		},
		{
			Name:        "GetHealthz",
			Method:      http.MethodGet,
			Pattern:     "/healthz",
			HandlerFunc: handleFunctions.AnalyticsAPI.GetHealthz,
		},
		{
			Name:        "GetMe",
			Method:      http.MethodGet,
			Pattern:     "/auth/me",
			HandlerFunc: handleFunctions.AuthAPI.GetMe,
		},
		{
			Name:        "Logout",
			Method:      http.MethodPost,
			Pattern:     "/auth/logout",
			HandlerFunc: handleFunctions.AuthAPI.Logout,
		},
	}
}
