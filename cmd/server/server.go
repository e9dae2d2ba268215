package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/handlers/ops"
)

const shutdownTimeout = 30 * time.Second

var (
	configPath string
	grpcPort   int
	opsPort    int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the arena gRPC server and, unless disabled, the HTTP ops listener.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().IntVar(&opsPort, "ops-port", 0, "HTTP ops port (overrides config)")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort > 0 {
		cfg.GRPC.Port = grpcPort
	}
	if opsPort > 0 {
		cfg.Ops.Port = opsPort
	}

	slog.SetDefault(newLogger(cfg.Log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer a.close()

	srv, err := newGRPCServer(a)
	if err != nil {
		return err
	}

	var e *echo.Echo
	if cfg.Ops.Enabled {
		opsHandler, err := ops.NewHandler(&ops.Config{
			BattleService: a.battles,
			Archive:       a.archive,
			Gatherer:      a.registry,
			Checks:        a.readinessChecks(),
		})
		if err != nil {
			return err
		}
		e = opsHandler.NewEcho()
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
		slog.Info("gRPC server starting", "port", cfg.GRPC.Port)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down gRPC server...")
		gracefulStop(srv)
		return nil
	})

	if e != nil {
		g.Go(func() error {
			addr := fmt.Sprintf(":%d", cfg.Ops.Port)
			slog.Info("Ops server starting", "port", cfg.Ops.Port)
			if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops server failed: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

func newGRPCServer(a *app) (*grpc.Server, error) {
	logger := interceptorLogger(slog.Default())
	recovery := grpc_recovery.WithRecoveryHandler(func(p any) error {
		slog.Error("Recovered from panic", "panic", p, "stack", string(debug.Stack()))
		return errors.ToGRPCError(errors.Internal("internal error"))
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			a.metrics.UnaryServerInterceptor(),
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)

	battleHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BattleService: a.battles,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle handler: %w", err)
	}
	v1alpha1.RegisterBattleServiceServer(srv, battleHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, nil
}

// gracefulStop waits for in-flight calls up to shutdownTimeout
func gracefulStop(srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(shutdownTimeout):
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}
}

// interceptorLogger adapts slog to the grpc logging middleware
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
