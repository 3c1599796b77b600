package logging

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const RequestIDHeader = "X-Request-ID"

// Middleware tags each request with an id (reusing an incoming
// X-Request-ID), stores it on the user context, echoes it in the response
// and writes one access log line when the handler returns.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		id := c.Get(RequestIDHeader)
		if id == "" {
			id = GenerateRequestID()
		}
		c.Set(RequestIDHeader, id)
		c.SetUserContext(ContextWithRequestID(c.UserContext(), id))

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		ev := Ctx(c.UserContext()).Info()
		if status >= fiber.StatusInternalServerError {
			ev = Ctx(c.UserContext()).Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Err(err).
			Msg("request")

		return err
	}
}
