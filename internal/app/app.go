package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kegliz/qplay/internal/config"
	"github.com/kegliz/qplay/internal/logger"
	"github.com/kegliz/qplay/internal/qservice"
	"github.com/kegliz/qplay/internal/server/router"

	"github.com/kegliz/qplay/internal/server"
)

type (
	ServerOptions struct {
		C       *config.Config
		Version string
	}

	appServer struct {
		logger       *logger.Logger
		router       *router.Router
		qs           qservice.Service
		version      string
		maxQubits    int
		defaultShots int
	}

	appServerOptions struct {
		logger       *logger.Logger
		router       *router.Router
		qs           qservice.Service
		version      string
		maxQubits    int
		defaultShots int
	}
)

// newAppServer creates a new appServer.
func newAppServer(options appServerOptions) *appServer {
	if options.maxQubits <= 0 {
		options.maxQubits = 10
	}
	if options.defaultShots <= 0 {
		options.defaultShots = 1000
	}
	a := &appServer{
		logger:       options.logger,
		router:       options.router,
		qs:           options.qs,
		version:      options.version,
		maxQubits:    options.maxQubits,
		defaultShots: options.defaultShots,
	}
	a.router.SetRoutes(a.routes())
	return a
}

// Listen implements server.Server.
// Listen implements server.Server.
func (a *appServer) Listen(port int, localOnly bool) error {
	a.logger.Debug().Str("version", a.version).Msg("debug quantum playground server")
	a.logger.Info().
		Int("port", port).
		Bool("localOnly", localOnly).
		Msg("Starting quantum playground service")
	return a.router.Start(port, localOnly)
}

// Shutdown implements server.Server.
func (a *appServer) Shutdown(ctx context.Context) error {
	return a.router.Shutdown(ctx)
}

func NewServer(options ServerOptions) (server.Server, error) {
	l, r := server.NewLoggerAndRouter(server.EngineOptions{
		Debug: options.C.GetBool("debug"),
	})
	qs := qservice.NewService(qservice.ServiceOptions{
		Logger: l,
	})
	app := newAppServer(appServerOptions{
		logger:       l,
		router:       r,
		qs:           qs,
		version:      options.Version,
		maxQubits:    options.C.GetInt("max_qubits"),
		defaultShots: options.C.GetInt("shots"),
	})

	return app, nil
}

func (a *appServer) getLoggerFromContext(c *gin.Context) (*logger.Logger, error) {
	if loggerInstance, ok := c.Get("logger"); ok {
		if loggerInstance, ok := loggerInstance.(*logger.Logger); ok {
			return loggerInstance, nil
		}
	}
	err := errors.New("logger not found in context")
	a.logger.Error().Err(err).Send()
	c.String(http.StatusInternalServerError, internalServerErrorMsg)
	return nil, err
}
