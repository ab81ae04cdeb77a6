package grpc_server

import (
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/psds-microservice/vehicle-service/pkg/constants"
)

// Logger — минимальный интерфейс логгера.
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// HealthServer — gRPC-сервер со стандартным grpc.health.v1 и reflection.
// Отдельный API для машин по gRPC не публикуется: только проверки оркестратора.
type HealthServer struct {
	server *grpc.Server
	health *health.Server
	logger Logger
}

// NewHealthServer создаёт сервер в состоянии NOT_SERVING.
func NewHealthServer(logger Logger) *HealthServer {
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	s := &HealthServer{server: srv, health: hs, logger: logger}
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// MarkServing переводит сервис в SERVING (данные загружены, HTTP слушает).
func (s *HealthServer) MarkServing() {
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
}

func (s *HealthServer) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(constants.ServiceName, status)
}

// Serve блокируется до Stop или ошибки листенера.
func (s *HealthServer) Serve(lis net.Listener) error {
	if s.logger != nil {
		s.logger.Info("Starting gRPC server", zap.String("address", lis.Addr().String()))
	}
	return s.server.Serve(lis)
}

// Stop помечает NOT_SERVING и останавливает сервер, дожидаясь активных RPC.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
