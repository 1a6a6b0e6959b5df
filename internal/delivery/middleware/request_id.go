package middleware

import (
	"log/slog"

	deliverycontext "challengehub/internal/delivery/context"
	"challengehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware takes the request ID from X-Request-Id or generates one,
// echoes it on the response and attaches a request-scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
	idGen  service.IDGenerator
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger, idGen service.IDGenerator) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
		idGen:  idGen,
	}
}

// Process stores the request ID in echo.Context and context.Context and sets the response header.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = m.idGen.NewID()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
