package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/trivia-quest/internal/handlers/commands"
	"github.com/KirkDiggler/trivia-quest/internal/handlers/game/v1alpha1"
	"github.com/KirkDiggler/trivia-quest/internal/handlers/rest"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort int
	httpPort int
	store    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the game server",
	Long: `Start the Trivia Quest server. The save slot is loaded once at startup and
every committed change is written back in the background.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port (overrides TQ_GRPC_PORT)")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 8080, "REST gateway port, 0 disables (overrides TQ_HTTP_PORT)")
	serverCmd.Flags().StringVar(&store, "store", "memory", "save store: memory, redis or sqlite (overrides TQ_STORE)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http-port") {
		cfg.HTTPPort = httpPort
	}
	if cmd.Flags().Changed("store") {
		cfg.Store = store
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, closeStore, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	router, err := commands.NewRouter(&commands.Config{Service: svc})
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}

	gameHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Router: router})
	if err != nil {
		return fmt.Errorf("failed to create game handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := interceptorLogger(slog.Default())
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterGameServiceServer(srv, gameHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "store", cfg.Store, "save_key", cfg.SaveKey)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()

	var httpServer *http.Server
	if cfg.HTTPPort > 0 {
		restHandler, err := rest.NewHandler(&rest.Config{
			Router:         router,
			AllowedOrigins: cfg.CORSOrigins,
		})
		if err != nil {
			return fmt.Errorf("failed to create rest handler: %w", err)
		}

		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           restHandler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			slog.Info("REST gateway starting", "port", cfg.HTTPPort)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("failed to serve http: %w", err)
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping")
	case serveErr = <-errChan:
		slog.Error("Server failed", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	healthServer.Shutdown()
	if httpServer != nil {
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("REST gateway shutdown failed", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("gRPC server stopped gracefully")
	}

	// Close waits for the last committed state to reach the store
	if err := svc.Close(shutdownCtx); err != nil {
		slog.Error("Final save did not complete", "error", err)
	}

	return serveErr
}

// interceptorLogger bridges go-grpc-middleware logging onto slog
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "Recovered from panic in handler", "panic", p)
	return status.Error(codes.Internal, "internal error")
}
