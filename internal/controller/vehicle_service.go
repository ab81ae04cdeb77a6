package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/psds-microservice/vehicle-service/internal/catalog"
)

// VehicleService — read-only доступ к списку машин, загруженному при старте.
type VehicleService interface {
	ListVehicles(ctx context.Context) catalog.Vehicles
	Count() int
}

// VehicleServiceImpl реализует VehicleService поверх неизменяемого catalog.Vehicles.
type VehicleServiceImpl struct {
	logger   *zap.Logger
	vehicles catalog.Vehicles
}

// NewVehicleService создает сервис. vehicles не копируется: значение неизменяемо.
func NewVehicleService(logger *zap.Logger, vehicles catalog.Vehicles) *VehicleServiceImpl {
	logger.Info("Vehicle catalog ready", zap.Int("vehicles", vehicles.Len()))
	return &VehicleServiceImpl{
		logger:   logger,
		vehicles: vehicles,
	}
}

func (s *VehicleServiceImpl) ListVehicles(ctx context.Context) catalog.Vehicles {
	s.logger.Debug("Listing vehicles", zap.Int("count", s.vehicles.Len()))
	return s.vehicles
}

func (s *VehicleServiceImpl) Count() int {
	return s.vehicles.Len()
}
