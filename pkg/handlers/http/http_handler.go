package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Redaction
	RedactHandler     Handler
	DeRedactHandler   Handler
	ReleaseMapHandler Handler

	// Generation
	SummarizeHandler           Handler
	HighlightsHandler          Handler
	DraftPatientMessageHandler Handler
}
