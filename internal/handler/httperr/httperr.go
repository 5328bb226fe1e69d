package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure body: {"success": false, "message": "..."}.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewResponse(status int, msg string) Response {
	return Response{Status: status, Success: false, Message: msg}
}

// preserves original error for the request log
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
