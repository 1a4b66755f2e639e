// Package api implements app.Runner for the clubhouse API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	apphttp "github.com/ZenRepublic/Clubhouse/pkg/app/http"
	"github.com/ZenRepublic/Clubhouse/pkg/auth"
	"github.com/ZenRepublic/Clubhouse/pkg/clubstore"
	"github.com/ZenRepublic/Clubhouse/pkg/config"
	"github.com/ZenRepublic/Clubhouse/pkg/feed"
	gameservice "github.com/ZenRepublic/Clubhouse/pkg/game/service"
	"github.com/ZenRepublic/Clubhouse/pkg/pgutil"
	"github.com/ZenRepublic/Clubhouse/pkg/reconciler"
	"github.com/ZenRepublic/Clubhouse/pkg/tracing"
)

const tracerName = "github.com/ZenRepublic/Clubhouse"

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting clubhouse API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("program_authority", cfg.Program.AuthorityAddress().Hex()),
	)

	shutdownTracing, err := tracing.Setup(ctx, &cfg.Tracing)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", zap.Error(err))
		}
	}()

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	store := clubstore.NewStore(db)

	var hub *feed.Hub
	opts := []gameservice.Option{
		gameservice.WithForceClose(cfg.Game.ForceClose),
		gameservice.WithMinNativeReserve(cfg.Game.MinNativeReserve),
	}
	if cfg.Feed.Enabled {
		hub = feed.NewHub(cfg.Feed, logger)
		defer hub.Close()
		opts = append(opts, gameservice.WithPublisher(hub))
	}

	svc := gameservice.NewService(store, cfg.Program.AuthorityAddress(), logger, opts...)
	svc = gameservice.NewTracing(svc, otel.Tracer(tracerName))
	svc = gameservice.NewLog(svc, logger)

	audit := reconciler.New(store, logger)
	s.runInitialAudit(ctx, audit, logger)
	stopAudit := s.startPeriodicAudit(audit, logger)
	defer stopAudit()

	authn := auth.NewAuthenticator(&cfg.Auth, logger)
	if cfg.Auth.TrustSignerHeader {
		logger.Warn("Trusting X-Signer header without signature verification")
	}

	router := s.setupRouter(svc, authn, hub, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before deferred DB closes kick in.
	stopAudit()

	return err
}

func (s *Server) runInitialAudit(ctx context.Context, audit *reconciler.Reconciler, logger *zap.Logger) {
	if s.cfg.Auditor.InitialTimeout <= 0 {
		return
	}

	startupCtx, cancel := context.WithTimeout(ctx, s.cfg.Auditor.InitialTimeout)
	defer cancel()

	if _, err := audit.ReconcileAll(startupCtx); err != nil {
		logger.Warn("Initial escrow audit failed (will retry periodically)", zap.Error(err))
	}
}

func (s *Server) startPeriodicAudit(audit *reconciler.Reconciler, logger *zap.Logger) func() {
	if s.cfg.Auditor.Interval <= 0 {
		return func() {}
	}

	logger.Info("Starting periodic escrow audit", zap.Duration("interval", s.cfg.Auditor.Interval))
	audit.StartPeriodicReconciliation(s.cfg.Auditor.Interval)

	stopped := false
	return func() {
		if stopped {
			return
		}
		stopped = true
		audit.Stop()
	}
}

func (s *Server) setupRouter(
	svc gameservice.Service,
	authn *auth.Authenticator,
	hub *feed.Hub,
	logger *zap.Logger,
) chi.Router {
	cfg := s.cfg
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apphttp.AccessLog(logger))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", cfg.Metrics.Path))
	}

	// The feed is long-lived and must not inherit the request timeout.
	if hub != nil {
		r.Get("/feed", hub.Handle)
		logger.Info("Event feed enabled", zap.String("path", "/feed"))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
		gameservice.RegisterRoutes(r, svc, authn.Middleware, logger)
	})

	return r
}
