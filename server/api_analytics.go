package synqserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	analyticsapp "github.com/SHWFT/synqchain/internal/domains/analytics/application"
)

// AnalyticsAPI relays ERP adapter data and serves the health probes.
type AnalyticsAPI struct {
	service *analyticsapp.Service
}

// NewAnalyticsAPI creates an AnalyticsAPI backed by the provided service.
func NewAnalyticsAPI(service *analyticsapp.Service) AnalyticsAPI {
	return AnalyticsAPI{service: service}
}

// Get /analytics/activity
// Recent ERP activity feed
func (api *AnalyticsAPI) GetActivity(c *gin.Context) {
	entries, err := api.service.Activity(c.Request.Context())
	if err != nil {
		respondRelayError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Get /analytics/kpis
// Dashboard headline numbers
func (api *AnalyticsAPI) GetKPIs(c *gin.Context) {
	snapshot, err := api.service.KPIs(c.Request.Context())
	if err != nil {
		respondRelayError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Get /erps/health
// Adapter reachability; 503 when the configured backend is down
func (api *AnalyticsAPI) GetERPHealth(c *gin.Context) {
	health, err := api.service.Health(c.Request.Context())
	if err != nil {
		respondRelayError(c, err)
		return
	}
	status := http.StatusOK
	if !health.Healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}

// Get /health
// Liveness with service identity, for the dashboard status widget
func (api *AnalyticsAPI) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "synqchain-api",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Get /healthz
// Bare liveness probe
func (api *AnalyticsAPI) GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
