package api

import (
	"net/http"

	"storefront-api/internal/domain/order"
	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
}

func NewOrderHandler(cmds commands.OrderCommands) *OrderHandler {
	return &OrderHandler{cmds: cmds}
}

// @Summary Submit order
// @Description Build the order summary, store the order (best-effort) and forward the summary to the operator chat (best-effort).
// @Description The total is taken as submitted and is never recomputed from the items.
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body reqdto.OrderRequest true "Cart contents"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} resdto.ErrorResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /api/order [post]
func (h *OrderHandler) Submit(c *gin.Context) {
	var req reqdto.OrderRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, middleware.MsgInternal)
		return
	}

	result, err := h.cmds.SubmitOrder(c.Request.Context(), in)
	if err != nil {
		switch {
		case errs.Is(err, order.ErrEmptyItems):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgCartEmpty)
		case errs.IsValidation(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgOrderInvalid)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, middleware.MsgInternal)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderResult(result, msgOrderAccepted))
}
