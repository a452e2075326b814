package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carebridge/ai-service/pkg/config"
	handlers "github.com/carebridge/ai-service/pkg/handlers/http"
	"github.com/carebridge/ai-service/pkg/middleware"
	"github.com/carebridge/ai-service/pkg/server/router"
)

type (
	APIServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	APIServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	return &APIServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *APIServer) Run() error {
	s.WithRouters(router.NewAPIRouter(s.Config, s.middlewareTransport, s.handlerTransport))
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting api server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown() error {
	return s.Router.Shutdown()
}
