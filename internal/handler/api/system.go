package api

import (
	"net/http"

	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	health queries.HealthQueries
	notify commands.NotificationCommands
}

func NewSystemHandler(health queries.HealthQueries, notify commands.NotificationCommands) *SystemHandler {
	return &SystemHandler{health: health, notify: notify}
}

// @Summary Health check
// @Description Process status, uptime and which notifier settings are present (never their values)
// @Tags system
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /api/health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	view, err := h.health.Health(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, middleware.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHealthView(view))
}

// @Summary Telegram self-test
// @Description Send a fixed test message to the operator chat
// @Tags system
// @Produce json
// @Success 200 {object} resdto.SelfTestResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /api/test-telegram [get]
func (h *SystemHandler) TestTelegram(c *gin.Context) {
	result, err := h.notify.SendTestMessage(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, middleware.MsgInternal)
		return
	}

	msg := msgSelfTestFailed
	if result.Delivered {
		msg = msgSelfTestOK
	}
	c.JSON(http.StatusOK, resdto.FromSelfTestResult(result, msg))
}
