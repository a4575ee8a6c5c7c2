package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		requestID := uuid.New().String()

		logger := log.With().Str("request_id", requestID).Logger()
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		err := next(c)

		req := c.Request()
		res := c.Response()

		log.Ctx(req.Context()).Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("route", c.Path()).
			Str("remote_ip", c.RealIP()).
			Int("status", res.Status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Msg("request completed")

		return err
	}
}
