package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/team-lock/internal/logger"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// The server exposes only grpc.health.v1.Health. Its overall status follows
// the database: SERVING while Ping succeeds, NOT_SERVING otherwise.
type Handler struct {
	pinger Pinger
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as NOT_SERVING
// until the first successful CheckHealth.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		pinger: pinger,
		health: hs,
		logger: logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckHealth pings the database once and updates the serving status.
func (h *Handler) CheckHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.pinger == nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	} else if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("database is unreachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	return status
}

// WatchHealth calls CheckHealth every interval until ctx is done.
func (h *Handler) WatchHealth(ctx context.Context, interval time.Duration) {
	h.CheckHealth(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.CheckHealth(ctx)
		}
	}
}

// Shutdown switches every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
