package middleware

import (
	"log/slog"
	"net/http"

	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// MsgInternal is the only text a client sees for unexpected failures.
const MsgInternal = "Server xatosi. Iltimos, keyinroq qayta urinib ko'ring."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if len(c.Errors) == 0 {
			if status := c.Writer.Status(); status != http.StatusOK {
				c.Status(status)
				c.Writer.WriteHeaderNow()
			}
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, MsgInternal))
	}
}

// CustomRecovery turns a panic anywhere below it into the generic 500 body.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = errs.Newf("%v", rec)
				}
				logger.Error("recovered from panic",
					"error", err.Error(),
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", errs.ExtractStackLines(errs.Wrap(err, "panic"), 12))

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, MsgInternal))
			}
		}()
		c.Next()
	}
}
