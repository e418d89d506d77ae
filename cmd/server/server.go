package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/KirkDiggler/layout-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/layout-api/internal/config"
	"github.com/KirkDiggler/layout-api/internal/handlers/layout/v1alpha1"
	"github.com/KirkDiggler/layout-api/internal/handlers/rest"
	"github.com/KirkDiggler/layout-api/internal/orchestrators/room"
	"github.com/KirkDiggler/layout-api/internal/pkg/logging"
	redisclient "github.com/KirkDiggler/layout-api/internal/redis"
	"github.com/KirkDiggler/layout-api/internal/repositories/component"
	"github.com/KirkDiggler/layout-api/internal/repositories/featureflag"
	"github.com/KirkDiggler/layout-api/internal/repositories/roomtemplate"
	"github.com/KirkDiggler/layout-api/internal/services/flags"
	"github.com/KirkDiggler/layout-api/internal/sqlite"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Start the layout service with the gRPC API and, unless http.port is 0, the HTTP/JSON API.`,
	RunE:  runServer,
}

var grpcPortOverride int

func init() {
	serverCmd.Flags().IntVar(&grpcPortOverride, "port", 0, "gRPC server port (overrides config)")
}

// dependencies are the long-lived resources the servers are built on
type dependencies struct {
	db          *sql.DB
	redisClient redisclient.Client
	service     room.Service
}

func (d *dependencies) Close() {
	if d.redisClient != nil {
		_ = d.redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}
	if d.db != nil {
		_ = d.db.Close() // nolint:errcheck // safe to ignore on shutdown
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if grpcPortOverride != 0 {
		cfg.GRPC.Port = grpcPortOverride
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RoomService: deps.service})
	if err != nil {
		return fmt.Errorf("failed to create layout handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(logger)
	apiv1alpha1.RegisterLayoutServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(apiv1alpha1.LayoutService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.GRPC.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()

	var app *fiber.App
	if cfg.HTTP.Port != 0 {
		restHandler, err := rest.NewHandler(&rest.HandlerConfig{Service: handler, Logger: logger})
		if err != nil {
			return fmt.Errorf("failed to create http handler: %w", err)
		}
		app = rest.NewApp(restHandler, rest.AppConfig{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			AllowOrigins: cfg.HTTP.AllowOrigins,
			AccessLog:    cfg.HTTP.AccessLog,
		})

		go func() {
			logger.Info("HTTP server starting", "port", cfg.HTTP.Port)
			if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port), fiber.ListenConfig{
				DisableStartupMessage: true,
			}); err != nil {
				errChan <- fmt.Errorf("failed to serve http: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal, gracefully stopping")
	case err := <-errChan:
		healthServer.Shutdown()
		srv.Stop()
		return err
	}

	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GRPC.ShutdownTimeout)
	defer shutdownCancel()

	if app != nil {
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Warn("http shutdown failed", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		logger.Info("server stopped gracefully")
	}
	return nil
}

func buildDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, err
	}
	deps.db = db

	redisClient, err := redisclient.Connect(cfg.Redis.Endpoints, &redisclient.Options{
		PoolSize:    cfg.Redis.PoolSize,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.ConnectTimeout,
		UseTLS:      cfg.Redis.UseTLS,
	})
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.redisClient = redisClient

	if err := redisclient.Check(ctx, redisClient, cfg.Redis.ConnectTimeout); err != nil {
		// Component reads fall through to SQLite and flags read as off
		logger.Warn("redis unreachable at startup", "endpoints", cfg.Redis.Endpoints, "error", err)
	}

	templates, err := roomtemplate.NewSQLite(ctx, &roomtemplate.SQLiteConfig{DB: db, Seed: cfg.SQLite.Seed})
	if err != nil {
		deps.Close()
		return nil, err
	}

	store, err := component.NewSQLite(ctx, &component.SQLiteConfig{DB: db, Logger: logger, Seed: cfg.SQLite.Seed})
	if err != nil {
		deps.Close()
		return nil, err
	}

	components, err := component.NewCached(&component.CacheConfig{
		Next:   store,
		Client: redisClient,
		TTL:    cfg.Redis.ComponentTTL,
		Logger: logger,
	})
	if err != nil {
		deps.Close()
		return nil, err
	}

	flagRepo, err := featureflag.NewRedisRepository(&featureflag.Config{Client: redisClient})
	if err != nil {
		deps.Close()
		return nil, err
	}

	evaluator, err := flags.NewEvaluator(&flags.Config{
		Repository: flagRepo,
		TTL:        cfg.Flags.TTL,
		Logger:     logger,
	})
	if err != nil {
		deps.Close()
		return nil, err
	}

	service, err := room.NewOrchestrator(&room.Config{
		RoomTemplates: templates,
		Components:    components,
		Flags:         evaluator,
		Logger:        logger,
	})
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.service = service

	return deps, nil
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	interceptorLogger := grpcLogger(logger)
	recoveryHandler := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "panic in handler", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger),
			grpc_recovery.UnaryServerInterceptor(recoveryHandler),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger),
			grpc_recovery.StreamServerInterceptor(recoveryHandler),
		),
	)
}

// grpcLogger adapts slog to the interceptor logger
func grpcLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
