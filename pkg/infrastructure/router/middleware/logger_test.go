package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"todo-api-backend/pkg/infrastructure/router/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestLogger(t *testing.T) {
	t.Run("It should fall back to the global logger", func(t *testing.T) {
		assert.Equal(t, zap.S(), middleware.Logger(newContext()))
	})

	t.Run("It should return the logger stored on the context", func(t *testing.T) {
		c := newContext()
		log := zap.NewNop().Sugar()
		middleware.SetLogger(c, log)
		assert.Same(t, log, middleware.Logger(c))
	})
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	c := newContext()
	c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

	h := middleware.ContextLogger(log)(func(c echo.Context) error {
		middleware.Logger(c).Info("handled")
		return nil
	})
	require.NoError(t, h(c))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "handled", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
}
