package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	domain "github.com/carebridge/ai-service/pkg/domain/errors"
)

// handleDomainError translates domain errors into HTTP responses. Anything
// outside the known taxonomy gets a generic 500; the detail stays in the
// server log.
func handleDomainError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case domain.IsMapNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case domain.IsMalformedResponse(err):
		logger.WithError(err).Error("upstream returned malformed output")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "upstream returned an unreadable response"})
	case domain.IsUpstreamUnavailable(err):
		logger.WithError(err).Error("upstream unavailable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "generation service temporarily unavailable"})
	default:
		logger.WithError(err).Error("unexpected error handling request")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
