package api

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindJSON treats an empty body as an empty object so missing fields surface as
// validation failures rather than format errors.
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
