//go:build unit

package bootstrap_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"storefront-api/cmd/bootstrap"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/pkg/netport"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	err := fx.ValidateApp(
		bootstrap.Module,
		fx.Provide(func() *gin.Engine { return gin.New() }),
	)
	assert.NoError(t, err)
}

func TestLogBindRemediation(t *testing.T) {
	t.Run("exhausted port suggests freeing it", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		bootstrap.LogBindRemediation(logger, 3002, errs.Mark(errs.New("busy"), netport.ErrPortExhausted))

		out := buf.String()
		assert.Contains(t, out, "pm2 stop")
		assert.Contains(t, out, "kill -9 $(lsof -t -i:3002)")
		assert.Contains(t, out, "lsof -i :3002")
		assert.Contains(t, out, "netstat -tulpn | grep :3002")
	})

	t.Run("other bind errors only point at the port", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		bootstrap.LogBindRemediation(logger, 80, errors.New("permission denied"))

		out := buf.String()
		assert.Contains(t, out, "permission denied")
		assert.NotContains(t, out, "pm2")
		assert.Contains(t, out, "lsof -i :80")
	})
}
