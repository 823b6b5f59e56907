package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/complaint-service/internal/utils"
)

// ErrorResponse is the JSON error body for API routes.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs the start of handler work with request-scoped context.
func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.LoggerFromContext(c, h.logger).Info(msg, args...)
}

// LogError logs a handler failure with request-scoped context.
func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err.Error())
	utils.LoggerFromContext(c, h.logger).Error(msg, args...)
}
