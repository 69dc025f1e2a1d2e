package middleware

import (
	"time"

	"FormPull/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one line per request through the application logger.
// A nil logger disables request logging.
func RequestLogging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if log == nil {
				return next(c)
			}

			req := c.Request()
			start := time.Now()

			err := next(c)

			log.Info("http request",
				logger.String("method", req.Method),
				logger.String("uri", req.RequestURI),
				logger.String("remote", req.RemoteAddr),
				logger.Int("status", c.Response().Status),
				logger.Duration("duration_ms", time.Since(start)),
			)
			return err
		}
	}
}
