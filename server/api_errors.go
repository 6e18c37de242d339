package synqserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	projectsapp "github.com/SHWFT/synqchain/internal/domains/projects/application"
	purchasingapp "github.com/SHWFT/synqchain/internal/domains/purchasing/application"
	purchasingdomain "github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	purchasingports "github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
)

// errInternal is the only message 500s on lifecycle routes carry; internal
// error details stay in the logs.
var errInternal = errors.New("internal server error")

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondPurchaseOrderError maps the purchasing error taxonomy to HTTP.
// NotFound and InvalidTransition stay distinguishable; everything else is
// a generic 500.
func respondPurchaseOrderError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var invalid *purchasingdomain.InvalidTransitionError
	switch {
	case errors.Is(err, purchasingports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.As(err, &invalid):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, purchasingapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, errInternal)
	}
}

// respondProjectError maps project failures: validation to 400 with the
// failure message, everything else to a relayed 500.
func respondProjectError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, projectsapp.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	respondRelayError(c, err)
}

// respondRelayError forwards the error's message with a 500, falling back
// to a generic message when the error carries none. Used by the ERP relay
// routes, which historically surface the adapter's message.
func respondRelayError(c *gin.Context, err error) {
	msg := errInternal.Error()
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
