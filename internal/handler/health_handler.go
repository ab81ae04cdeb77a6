package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/vehicle-service/pkg/constants"
)

// HealthHandler отдает /health и /ready
type HealthHandler struct {
	version string
	counter interface{ Count() int }
}

func NewHealthHandler(version string, counter interface{ Count() int }) *HealthHandler {
	return &HealthHandler{version: version, counter: counter}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET(constants.PathHealth, h.Health)
	router.GET(constants.PathReady, h.Ready)
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  constants.ServiceName,
		"version":  h.version,
		"vehicles": h.counter.Count(),
		"time":     time.Now().Unix(),
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
