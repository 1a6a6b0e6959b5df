package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"challengehub/config"
	"challengehub/internal/delivery"
	apimiddleware "challengehub/internal/delivery/api/middleware"
	"challengehub/internal/delivery/api/router"
	"challengehub/internal/delivery/api/validator"
	"challengehub/internal/delivery/middleware"
	"challengehub/internal/domain/lifecycle"
	"challengehub/internal/domain/service"
	"challengehub/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	IDGen        service.IDGenerator
	Registerer   prometheus.Registerer
	RouterParams router.RouterParams
}

// apiServer serves the challenge API over HTTP/1.1 and h2c.
type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// NewServer builds the echo instance and registers graceful shutdown.
// Serving starts when the process lifecycle calls Serve.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e, err := newEcho(params)
	if err != nil {
		return nil, err
	}

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func newEcho(params ServerParams) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := params.Cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	chain, err := middlewareChain(params)
	if err != nil {
		return nil, err
	}
	e.Use(chain...)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterMetricsRoute(e)

	return e, nil
}

// middlewareChain returns the middlewares outermost first. Request ID must
// precede logging and metrics so both see the scoped logger.
func middlewareChain(params ServerParams) ([]echo.MiddlewareFunc, error) {
	chain := []echo.MiddlewareFunc{
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger, params.IDGen).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	}

	if params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		metricsMiddleware, err := middleware.NewMetricsMiddleware(params.Registerer)
		if err != nil {
			return nil, err
		}
		chain = append(chain, metricsMiddleware.Handle)
	}

	// Browser clients are served from other origins.
	chain = append(chain,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
	)

	return chain, nil
}

func (s *apiServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting challenge API",
		slog.String("host_port", hostPort),
		slog.String("store", s.cfg.Store.Driver),
	)

	h2s := &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout}
	if err := s.echo.StartH2CServer(hostPort, h2s); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down challenge API")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
