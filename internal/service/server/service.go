package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcapi "github.com/oshokin/release-server/internal/api/grpc/release"
	httpapi "github.com/oshokin/release-server/internal/api/http/release"
	"github.com/oshokin/release-server/internal/config"
	domain "github.com/oshokin/release-server/internal/domain/release"
	"github.com/oshokin/release-server/internal/logger"
	pb "github.com/oshokin/release-server/internal/pb/release/v1"
	repo "github.com/oshokin/release-server/internal/repository/release"
	"github.com/oshokin/release-server/internal/service/ingest"
	"github.com/oshokin/release-server/internal/service/update"
)

const (
	// shutdownTimeout bounds the graceful shutdown of the HTTP server.
	shutdownTimeout = 10 * time.Second
	// readHeaderTimeout protects against slow clients.
	readHeaderTimeout = 10 * time.Second
)

// app holds the wired components of a running server.
type app struct {
	// store is shared by every service.
	store *repo.Store
	// httpServer serves the gin router.
	httpServer *http.Server
	// grpcServer serves ReleaseService and health.
	grpcServer *grpc.Server
	// health reports serving status over gRPC.
	health *health.Server
}

// newApp opens the store and wires services and transports.
func newApp(ctx context.Context, settings *config.Config) (*app, error) {
	store, err := repo.Open(ctx, &settings.Database)
	if err != nil {
		return nil, fmt.Errorf("open release store: %w", err)
	}

	policy, err := ingest.NewPolicy(&settings.Policy)
	if err != nil {
		_ = store.Close()

		return nil, fmt.Errorf("compile policy: %w", err)
	}

	var updateOpts []update.Option
	if settings.Cache.Enabled {
		updateOpts = append(updateOpts, update.WithCache(settings.Cache.TTL.Std()))
	}

	updates := update.NewService(store,
		domain.NewManifestBuilder(domain.Policy{RequireSignature: settings.Policy.RequireSignature}),
		updateOpts...)
	ingester := ingest.NewService(store, policy, ingest.WithInvalidator(updates))

	handler, err := httpapi.NewHandler(updates, ingester, httpapi.Options{
		AdminToken:  settings.AdminToken,
		Timeout:     settings.Timeout.Std(),
		Health:      store,
		CORSOrigins: settings.CORSOrigins,
	})
	if err != nil {
		_ = store.Close()

		return nil, fmt.Errorf("create http handler: %w", err)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcapi.LoggingInterceptor(settings.Timeout.Std()),
		grpcapi.AdminAuthInterceptor(settings.AdminToken),
	))
	pb.RegisterReleaseServiceServer(grpcServer, grpcapi.NewServer(updates, ingester))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.ReleaseService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return &app{
		store: store,
		httpServer: &http.Server{
			Handler:           handler.Router(),
			ReadHeaderTimeout: readHeaderTimeout,
			BaseContext: func(net.Listener) context.Context {
				return context.WithoutCancel(ctx)
			},
		},
		grpcServer: grpcServer,
		health:     healthServer,
	}, nil
}

// serve runs both servers until ctx is canceled or one of them fails.
func (a *app) serve(ctx context.Context, httpListener, grpcListener net.Listener) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := a.httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		if err := a.grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		logger.Info(ctx, "Shutting down servers")
		a.health.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
			logger.ErrorKV(ctx, "HTTP shutdown failed", "error", err)
		}

		a.grpcServer.GracefulStop()

		return nil
	})

	err := group.Wait()

	logger.Info(ctx, "Servers stopped")

	return err
}

// close releases the store.
func (a *app) close(ctx context.Context) {
	closeStore(ctx, a.store)
}
