package utilities

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
)

// forwardedHeaders are the HTTP headers the gateway propagates to downstream
// gRPC services as metadata.
var forwardedHeaders = []string{
	"Authorization",
	"User-Agent",
	"X-Request-ID",
	"X-Forwarded-For",
	"X-Real-IP",
}

// RegisterHealthServer registers the gRPC health check service and marks the
// whole server as serving.
func RegisterHealthServer(grpcServer *grpc.Server) {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
}

// ForwardHTTPHeaders returns a context carrying the request's forwardable
// headers as outgoing gRPC metadata.
func ForwardHTTPHeaders(ctx context.Context, r *http.Request) context.Context {
	md := metadata.New(nil)
	for _, header := range forwardedHeaders {
		if values := r.Header.Values(header); len(values) > 0 {
			md.Set(header, values...)
		}
	}

	return metadata.NewOutgoingContext(ctx, md)
}
