package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"rooming/config"
	_ "rooming/docs"
	"rooming/infras/postgres"
	"rooming/shared/constant"
	"rooming/shared/timezone"
	"rooming/transport/http/middleware"
	"rooming/transport/http/response"
	"rooming/transport/http/router"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	healthCheckTimeout = 3 * time.Second
	readHeaderTimeout  = 10 * time.Second
	healthMessage      = "Rooming List Manager API is running"
	healthDatabase     = "PostgreSQL"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

type HTTP struct {
	Config         *config.Config
	Router         router.Router
	DB             postgres.Pinger
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.Auth

	state     atomic.Int32
	mux       *chi.Mux
	setupOnce sync.Once
}

func New(
	cfg *config.Config,
	r router.Router,
	db postgres.Pinger,
	appMiddleware middleware.AppMiddleware,
	authMiddleware middleware.Auth,
) *HTTP {
	response.ExposeInternalErrors(cfg.Server.Env == constant.ServerEnvDevelopment)

	return &HTTP{
		Config:         cfg,
		Router:         r,
		DB:             db,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}

// Serve blocks until the server has shut down.
func (h *HTTP) Serve() {
	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	done := make(chan struct{})

	h.setupGracefulShutdown(server, done)

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-done
}

// ServeHTTP serves the fully wired router without binding a listener.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Handler().ServeHTTP(w, r)
}

func (h *HTTP) Handler() http.Handler {
	h.setupOnce.Do(func() {
		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})

	return h.mux
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	mux.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		h.AppMiddleware.RequestLogger,
		chiMiddleware.Recoverer,
		h.AppMiddleware.Tracing,
		h.AppMiddleware.CORS(),
	)

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithRouteNotFound(w)
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMethodNotAllowed(w)
	})

	mux.Get("/health", h.health)
	mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	mux.Route("/api", func(api chi.Router) {
		api.Use(h.AppMiddleware.RateLimit(), h.AuthMiddleware.Auth)

		h.Router.SetupRoutes(api)
	})

	h.mux = mux
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed")
		response.WithUnhealthy(w)

		return
	}

	response.WithRaw(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   healthMessage,
		Database:  healthDatabase,
		Timestamp: timezone.Now().Format(constant.TimestampFormat),
	})
}

func (h *HTTP) setupGracefulShutdown(server *http.Server, done chan struct{}) {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh, server, done)
}

// respondToSigterm keeps serving through the grace period while /health reports
// the shutdown, then gives in-flight requests the cleanup period to finish.
func (h *HTTP) respondToSigterm(signals chan os.Signal, server *http.Server, done chan struct{}) {
	<-signals

	defer close(done)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		shutdownConfig.GracePeriodSeconds = 0
		shutdownConfig.CleanupPeriodSeconds = 0
	} else {
		log.Info().Msg("Received SIGTERM.")
	}

	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server did not shut down cleanly")

		_ = server.Close()
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
