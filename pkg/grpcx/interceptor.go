// Package grpcx holds the unary interceptors of the catalog gRPC server.
package grpcx

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/tair/bookmypanditji/pkg/logger"
)

// Interceptors records per-method request metrics and log lines
type Interceptors struct {
	service  string
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInterceptors registers the gRPC request metrics on reg
func NewInterceptors(reg prometheus.Registerer, namespace, service string) *Interceptors {
	i := &Interceptors{
		service: service,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "grpc_requests_total",
				Help:      "Total number of gRPC requests",
			},
			[]string{"method", "status_code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "grpc_request_duration_seconds",
				Help:      "Duration of gRPC requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
	reg.MustRegister(i.requests, i.duration)
	return i
}

// Unary returns the interceptor to chain after the otelgrpc stats handler,
// so log lines carry the trace id.
func (i *Interceptors) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		duration := time.Since(start)

		code := status.Code(err).String()
		i.requests.WithLabelValues(info.FullMethod, code).Inc()
		i.duration.WithLabelValues(info.FullMethod).Observe(duration.Seconds())

		event := logger.Debug(ctx)
		if err != nil {
			event = logger.Error(ctx).Err(err)
		}
		event.
			Str("method", info.FullMethod).
			Str("protocol", "grpc").
			Str("service", i.service).
			Str("grpc_status", code).
			Int64("duration_ms", duration.Milliseconds()).
			Msg("gRPC request completed")

		return resp, err
	}
}
