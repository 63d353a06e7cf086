package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopapi/internal/server/http/dto"
)

// ServiceHandler reports service identity and liveness.
type ServiceHandler struct {
	name    string
	version string
}

func NewServiceHandler(name, version string) *ServiceHandler {
	return &ServiceHandler{name: name, version: version}
}

// Info handles GET /.
func (h *ServiceHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfoResponse{
		Message:  h.name + " users and orders API",
		Status:   "running",
		Version:  h.version,
		Services: []string{"users", "orders"},
	})
}

// Health handles GET /health.
func (h *ServiceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "healthy",
		Services: map[string]string{"users": "active", "orders": "active"},
	})
}
