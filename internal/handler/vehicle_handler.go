package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/psds-microservice/vehicle-service/internal/controller"
	"github.com/psds-microservice/vehicle-service/pkg/constants"
)

// VehicleHandler отдает список машин
type VehicleHandler struct {
	*BaseHandler
	service controller.VehicleService
}

// NewVehicleHandler создает новый хендлер
func NewVehicleHandler(logger *zap.Logger, service controller.VehicleService) *VehicleHandler {
	return &VehicleHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// RegisterRoutes регистрирует маршруты; middleware применяются только к /vehicles.
func (h *VehicleHandler) RegisterRoutes(router gin.IRoutes, middleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, middleware...), h.ListVehicles)
	router.GET(constants.PathVehicles, handlers...)
}

// ListVehicles отдает весь список в исходном порядке. Тело и query не читаются.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	h.SuccessResponse(c, h.service.ListVehicles(c.Request.Context()))
}
