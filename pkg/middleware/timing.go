package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/ai-service/pkg/common"
)

type timingMiddleware struct {
	logger *logrus.Logger
}

func NewTimingMiddleware(logger *logrus.Logger) Middleware {
	return &timingMiddleware{logger: logger}
}

func (m *timingMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		elapsed := time.Since(start)
		c.Set(common.ProcessTimeHeader, fmt.Sprintf("%.4f", elapsed.Seconds()))

		m.logger.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"duration_s": elapsed.Seconds(),
		}).Debug("request completed")

		return err
	}
}
