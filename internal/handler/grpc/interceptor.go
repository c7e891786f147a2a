package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/team-lock/internal/logger"
)

// LoggingInterceptor attaches a trace-id child logger to the call context and
// writes one entry per unary call.
func (h *Handler) LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", uuid.NewString())
	})
	ctx = l.WithContext(ctx)

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
