package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	CORSMiddleware      Middleware
	RequestIDMiddleware Middleware
	TimingMiddleware    Middleware
}

// Handlers returns the transport's middlewares in registration order.
func (t Transport) Handlers() []fiber.Handler {
	return []fiber.Handler{
		t.CORSMiddleware.Middleware(),
		t.RequestIDMiddleware.Middleware(),
		t.TimingMiddleware.Middleware(),
	}
}
