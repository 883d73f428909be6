package middleware

import (
	"log/slog"

	deliverycontext "emporia/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ContextMiddleware threads the request id and a request-scoped logger into
// the request context so the usecase layer logs with request attribution.
type ContextMiddleware struct {
	logger *slog.Logger
}

// NewContextMiddleware creates a new context middleware.
func NewContextMiddleware(logger *slog.Logger) *ContextMiddleware {
	return &ContextMiddleware{logger: logger}
}

// Handle enriches the request context. It runs after echo's RequestID
// middleware so an inbound X-Request-Id is honored.
func (m *ContextMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}
		deliverycontext.SetRequestID(c, requestID)

		requestLogger := m.logger.With(slog.String("request_id", requestID))

		req := c.Request()
		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
