package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/carebridge/ai-service/pkg/common"
)

type requestIDMiddleware struct{}

// NewRequestIDMiddleware tags every request with an id, honoring one the
// caller already set so traces line up across services.
func NewRequestIDMiddleware() Middleware {
	return &requestIDMiddleware{}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(common.RequestIDHeader, requestID)
		c.Set(common.RequestIDHeader, requestID)
		return c.Next()
	}
}
