package synqserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pomapper "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/http/mapper"
	potypes "github.com/SHWFT/synqchain/internal/domains/purchasing/application/types"
	purchasingdomain "github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	purchasingports "github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
)

// PurchaseOrderAPI wires HTTP transport with the purchasing service and
// its workflow orchestrator.
type PurchaseOrderAPI struct {
	service   purchasingports.Service
	workflows purchasingports.WorkflowOrchestrator
}

// NewPurchaseOrderAPI creates a PurchaseOrderAPI backed by the provided service.
func NewPurchaseOrderAPI(service purchasingports.Service, workflows purchasingports.WorkflowOrchestrator) PurchaseOrderAPI {
	return PurchaseOrderAPI{service: service, workflows: workflows}
}

// Post /po
// Register a new purchase order in DRAFT
func (api *PurchaseOrderAPI) CreatePurchaseOrder(c *gin.Context) {
	var payload pomapper.CreatePurchaseOrder
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	po, err := api.service.Create(c.Request.Context(), pomapper.ToCreateInput(payload))
	if err != nil {
		respondPurchaseOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, pomapper.FromPurchaseOrder(po))
}

// Get /po
// List purchase orders
func (api *PurchaseOrderAPI) ListPurchaseOrders(c *gin.Context) {
	result, err := api.service.List(c.Request.Context())
	if err != nil {
		respondPurchaseOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, pomapper.FromPurchaseOrderList(result))
}

// Get /po/:id
// Find purchase order by ID
func (api *PurchaseOrderAPI) GetPurchaseOrderById(c *gin.Context) {
	po, err := api.service.GetByID(c.Request.Context(), potypes.PurchaseOrderIdentifier{ID: c.Param("id")})
	if err != nil {
		respondPurchaseOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, pomapper.FromPurchaseOrder(po))
}

// Post /po/:id/submit
// Advance a DRAFT purchase order to PENDING_APPROVAL
func (api *PurchaseOrderAPI) SubmitPurchaseOrder(c *gin.Context) {
	input, ok := api.transitionInput(c)
	if !ok {
		return
	}
	po, err := api.submit(c.Request.Context(), input)
	if err != nil {
		respondPurchaseOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, pomapper.FromPurchaseOrder(po))
}

// Post /po/:id/approve
// Advance a PENDING_APPROVAL purchase order to APPROVED
func (api *PurchaseOrderAPI) ApprovePurchaseOrder(c *gin.Context) {
	input, ok := api.transitionInput(c)
	if !ok {
		return
	}
	po, err := api.service.Approve(c.Request.Context(), input)
	if err != nil {
		respondPurchaseOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, pomapper.FromPurchaseOrder(po))
}

// Get /po/:id/events
// Paginated transition log; malformed paging params silently default
func (api *PurchaseOrderAPI) GetPurchaseOrderEvents(c *gin.Context) {
	input := potypes.EventPageInput{
		ID:       c.Param("id"),
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "pageSize"),
	}
	page, err := api.service.Events(c.Request.Context(), input)
	if err != nil {
		respondPurchaseOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, pomapper.FromEventPage(page))
}

// submit prefers the durable orchestrator when one is wired; otherwise the
// transition runs inline against the service.
func (api *PurchaseOrderAPI) submit(ctx context.Context, input potypes.TransitionInput) (*purchasingdomain.PurchaseOrder, error) {
	if api.workflows != nil {
		return api.workflows.SubmitPurchaseOrder(ctx, input)
	}
	return api.service.Submit(ctx, input)
}

func (api *PurchaseOrderAPI) transitionInput(c *gin.Context) (potypes.TransitionInput, bool) {
	var payload pomapper.Transition
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, err)
		return potypes.TransitionInput{}, false
	}
	return potypes.TransitionInput{ID: c.Param("id"), Notes: payload.Notes}, true
}

// intQuery parses an integer query parameter, returning 0 (which the
// service clamps to its default) for missing or non-numeric values.
func intQuery(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}
