package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/psds-microservice/vehicle-service/internal/catalog"
	"github.com/psds-microservice/vehicle-service/internal/config"
	"github.com/psds-microservice/vehicle-service/internal/controller"
	apperrors "github.com/psds-microservice/vehicle-service/internal/errors"
	"github.com/psds-microservice/vehicle-service/internal/grpc_server"
	"github.com/psds-microservice/vehicle-service/internal/handler"
	"github.com/psds-microservice/vehicle-service/pkg/constants"
)

const shutdownTimeout = 10 * time.Second

// Application — HTTP-сервер списка машин (+ опциональный gRPC health).
// Жизненный цикл: Bootstrap → Listen → Serve(ctx). Данные загружаются до Listen.
type Application struct {
	config         *config.Config
	logger         *zap.Logger
	router         http.Handler
	server         *http.Server
	vehicleService *controller.VehicleServiceImpl
	limiter        *handler.RateLimitState
	grpcServer     *grpc_server.HealthServer
	out            io.Writer

	listener     net.Listener
	grpcListener net.Listener
}

// Bootstrap загружает данные через loader и собирает приложение.
// Ошибка загрузки фатальна: ничего не слушается.
func Bootstrap(cfg *config.Config, logger *zap.Logger, loader catalog.Loader, version string) (*Application, error) {
	vehicles, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load vehicles: %w", err)
	}
	return NewApplicationWithConfig(cfg, logger, vehicles, version), nil
}

// NewApplicationWithConfig создает приложение поверх уже загруженного списка.
func NewApplicationWithConfig(cfg *config.Config, logger *zap.Logger, vehicles catalog.Vehicles, version string) *Application {
	vehicleService := controller.NewVehicleService(logger, vehicles)
	vehicleHandler := handler.NewVehicleHandler(logger, vehicleService)
	healthHandler := handler.NewHealthHandler(version, vehicleService)

	var limiter *handler.RateLimitState
	if cfg.RateLimit.Requests > 0 {
		limiter = handler.NewRateLimitState(cfg.RateLimit.Requests, cfg.RateLimitWindow())
	}

	router := NewRouter(vehicleHandler, healthHandler, limiter, logger, cfg)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout(),
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	var grpcServer *grpc_server.HealthServer
	if cfg.GRPCAddr() != "" {
		grpcServer = grpc_server.NewHealthServer(logger)
	}

	return &Application{
		config:         cfg,
		logger:         logger,
		router:         router,
		server:         server,
		vehicleService: vehicleService,
		limiter:        limiter,
		grpcServer:     grpcServer,
		out:            os.Stdout,
	}
}

// SetOutput задает, куда пишется строка о готовности (по умолчанию stdout).
func (a *Application) SetOutput(w io.Writer) {
	a.out = w
}

// GetRouter возвращает роутер
func (a *Application) GetRouter() http.Handler {
	return a.router
}

// Addr возвращает фактический адрес HTTP-листенера после Listen.
func (a *Application) Addr() string {
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// Listen занимает порты. После успеха пишет строку о готовности в out.
func (a *Application) Listen() error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrListen, a.server.Addr, err)
	}
	if a.grpcServer != nil {
		gln, err := net.Listen("tcp", a.config.GRPCAddr())
		if err != nil {
			_ = ln.Close()
			return fmt.Errorf("%w: %s: %v", apperrors.ErrListen, a.config.GRPCAddr(), err)
		}
		a.grpcListener = gln
	}
	a.listener = ln

	fmt.Fprintf(a.out, "%s listening on %s\n", constants.ServiceName, ln.Addr())
	a.logger.Info("HTTP server listening",
		zap.String("address", ln.Addr().String()),
		zap.Int("vehicles", a.vehicleService.Count()))
	return nil
}

// Serve обслуживает запросы до отмены ctx или ошибки сервера, затем останавливается.
func (a *Application) Serve(ctx context.Context) error {
	if a.listener == nil {
		return errors.New("serve: Listen was not called")
	}

	errCh := make(chan error, 2)
	go func() {
		if err := a.server.Serve(a.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	if a.grpcServer != nil {
		go func() {
			if err := a.grpcServer.Serve(a.grpcListener); err != nil {
				errCh <- err
			}
		}()
		a.grpcServer.MarkServing()
	}

	select {
	case <-ctx.Done():
		a.logger.Info("Shutdown signal received")
	case err := <-errCh:
		a.logger.Error("Server error", zap.Error(err))
		_ = a.Stop()
		return err
	}
	return a.Stop()
}

// Run = Listen + Serve
func (a *Application) Run(ctx context.Context) error {
	if err := a.Listen(); err != nil {
		return err
	}
	return a.Serve(ctx)
}

// Stop останавливает приложение
func (a *Application) Stop() error {
	a.logger.Info("Stopping application")
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.grpcServer != nil {
		a.grpcServer.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	a.logger.Info("Server stopped")
	return nil
}
