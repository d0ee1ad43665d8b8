package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request.
func RequestLogger(log *zap.SugaredLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				log.Errorw("request failed", append(fields, "error", v.Error)...)
				return nil
			}
			log.Infow("request", fields...)
			return nil
		},
	})
}

// ContextLogger stores a request scoped logger for the handlers.
func ContextLogger(log *zap.SugaredLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			SetLogger(c, log.With("request_id", id))
			return next(c)
		}
	}
}

const loggerKey = "logger"

// SetLogger stores log on the request context.
func SetLogger(c echo.Context, log *zap.SugaredLogger) {
	c.Set(loggerKey, log)
}

// Logger returns the request logger, or the global one when none is set.
func Logger(c echo.Context) *zap.SugaredLogger {
	if log, ok := c.Get(loggerKey).(*zap.SugaredLogger); ok {
		return log
	}
	return zap.S()
}
