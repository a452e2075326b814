package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type corsMiddleware struct {
	allowOrigins []string
	allowMethods []string
	maxAge       string
}

func NewCORSMiddleware(allowOrigins []string) Middleware {
	return &corsMiddleware{
		allowOrigins: allowOrigins,
		allowMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodDelete,
			fiber.MethodOptions,
		},
		maxAge: "600",
	}
}

func (m *corsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			return c.Next()
		}

		allowed := false
		for _, o := range m.allowOrigins {
			if o == "*" || strings.EqualFold(o, origin) {
				allowed = true
				break
			}
		}
		if !allowed {
			return c.Next()
		}

		c.Set("Vary", "Origin")
		c.Set("Access-Control-Allow-Origin", origin)

		if c.Method() == fiber.MethodOptions {
			reqMethod := c.Get("Access-Control-Request-Method")
			if reqMethod != "" {
				c.Set("Access-Control-Allow-Methods", strings.Join(m.allowMethods, ", "))
				reqHeaders := c.Get("Access-Control-Request-Headers")
				if reqHeaders != "" {
					c.Set("Access-Control-Allow-Headers", reqHeaders)
				} else {
					c.Set("Access-Control-Allow-Headers", "Content-Type")
				}
				c.Set("Access-Control-Max-Age", m.maxAge)
				return c.SendStatus(fiber.StatusNoContent)
			}
		}
		return c.Next()
	}
}
