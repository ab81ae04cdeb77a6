package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/psds-microservice/vehicle-service/pkg/constants"
)

// BaseHandler базовый хендлер
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler создает базовый хендлер
func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

// SuccessResponse сериализует data и отвечает 200; ошибка сериализации — 500.
func (h *BaseHandler) SuccessResponse(c *gin.Context, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		h.ErrorResponse(c, http.StatusInternalServerError, "Failed to marshal response", err)
		return
	}
	c.Data(http.StatusOK, constants.ContentTypeJSON, body)
}

// ErrorResponse ответ с ошибкой
func (h *BaseHandler) ErrorResponse(c *gin.Context, status int, message string, err error) {
	h.logger.Error(message, zap.Error(err), zap.Int("status", status), zap.String("path", c.Request.URL.Path))
	errorDetails := ""
	if err != nil {
		errorDetails = err.Error()
	}
	c.JSON(status, gin.H{"error": message, "details": errorDetails})
}
