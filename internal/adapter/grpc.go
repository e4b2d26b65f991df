package adapter

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-drip-watch/internal/logger"
)

// HealthService is the gRPC health service name the companion registers.
const HealthService = "dripwatch.Companion"

type grpcHealthProbe struct {
	conn   *grpc.ClientConn
	health healthpb.HealthClient
	logger *logger.Logger
}

// NewGRPCHealthProbe returns a [ConnectivityProbe] that asks the companion's
// gRPC health service. The connection is established lazily on first use.
func NewGRPCHealthProbe(address string, logger *logger.Logger) (ConnectivityProbe, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}

	return &grpcHealthProbe{
		conn:   conn,
		health: healthpb.NewHealthClient(conn),
		logger: logger,
	}, nil
}

func (p *grpcHealthProbe) Connected(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	resp, err := p.health.Check(ctx, &healthpb.HealthCheckRequest{Service: HealthService})
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "grpcHealthProbe.Connected").Msg("companion health check failed")
		return false
	}

	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
}

func (p *grpcHealthProbe) Close() error {
	return p.conn.Close()
}
