package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cagncvs/minimal-api/pkg/auth"
	"github.com/cagncvs/minimal-api/pkg/config"
	"github.com/cagncvs/minimal-api/pkg/db"
	"github.com/cagncvs/minimal-api/pkg/mq"
	"github.com/cagncvs/minimal-api/pkg/obs"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/repository"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/service"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/session"
	httpx "github.com/cagncvs/minimal-api/services/minimal-api/internal/transport/http"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/transport/http/middlewares"
)

const serviceName = "minimal-api"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		slog.Error("minimal-api stopped", "error", err)
		os.Exit(1)
	}
}

// run returns only after every deferred resource has been released.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := obs.NewLogger(cfg.Env)
	slog.SetDefault(logger)
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	shutdownTracer, err := obs.InitTracer(ctx, serviceName, cfg.Env, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	// DB
	gdb, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close(gdb)
	adminRepo := repository.NewAdminRepo(gdb)
	vehicleRepo := repository.NewVehicleRepo(gdb)
	if err := adminRepo.Migrate(); err != nil {
		return fmt.Errorf("migrate administradores: %w", err)
	}
	if err := vehicleRepo.Migrate(); err != nil {
		return fmt.Errorf("migrate veiculos: %w", err)
	}

	// Events; without a broker mutations are simply not announced
	var pub mq.JSONPublisher = mq.Nop{}
	if cfg.RabbitURL != "" {
		p, err := mq.NewPublisher(cfg.RabbitURL, cfg.EventsExchange)
		if err != nil {
			return err
		}
		defer p.Close()
		pub = p
		logger.Info("publishing events", "exchange", cfg.EventsExchange)
	}

	admins := service.NewAdminSvc(adminRepo, auth.NewHasher(), pub, cfg.PageSize, logger)
	vehicles := service.NewVehicleSvc(vehicleRepo, pub, cfg.PageSize, logger)
	if err := admins.EnsureSeed(ctx, cfg.SeedAdminEmail, cfg.SeedAdminPassword, domain.RoleAdm); err != nil {
		return err
	}

	deps := httpx.Deps{
		Admins:       admins,
		Vehicles:     vehicles,
		Tokens:       auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL()),
		LoginLimiter: middlewares.NewIPLimiter(cfg.LoginRPS, cfg.LoginBurst),
		Logger:       logger,
		ServiceName:  serviceName,
	}
	if cfg.RedisURL != "" {
		reg, err := session.NewRedisRegistry(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer reg.Close()
		deps.Sessions = reg
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpx.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http listening", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	default:
		return nil
	}
}
