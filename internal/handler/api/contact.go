package api

import (
	"net/http"

	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Submit contact form
// @Description Store a contact message (best-effort) and forward it to the operator chat (best-effort)
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact form"
// @Success 200 {object} resdto.ContactResponse
// @Failure 400 {object} resdto.ErrorResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, middleware.MsgInternal)
		return
	}

	if _, err := h.cmds.SubmitContact(c.Request.Context(), in); err != nil {
		if errs.IsValidation(err) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgContactInvalid)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, middleware.MsgInternal)
		return
	}

	c.JSON(http.StatusOK, resdto.ContactResponse{
		Success: true,
		Message: msgContactAccepted,
	})
}
