package service

import (
	"context"
	"go-parking-management/internal/model"
	"go-parking-management/internal/repository"
	apperrors "go-parking-management/pkg/app_errors"
)

// VehicleService scopes every operation to the owning user; another user's
// vehicle reports as not found rather than forbidden.
type VehicleService interface {
	List(ctx context.Context, userID, page, limit int) (*model.VehiclePage, error)
	Create(ctx context.Context, userID int, req model.CreateVehicleRequest) (*model.Vehicle, error)
	Update(ctx context.Context, userID, id int, params model.UpdateVehicleParams) (*model.Vehicle, error)
	Delete(ctx context.Context, userID, id int) error
}

type VehicleServiceImpl struct {
	repo repository.VehicleRepository
}

func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &VehicleServiceImpl{repo: repo}
}

func (s *VehicleServiceImpl) List(ctx context.Context, userID, page, limit int) (*model.VehiclePage, error) {
	vehicles, total, err := s.repo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	return &model.VehiclePage{
		Total:    total,
		Page:     page,
		Limit:    limit,
		Vehicles: vehicles,
	}, nil
}

func (s *VehicleServiceImpl) Create(ctx context.Context, userID int, req model.CreateVehicleRequest) (*model.Vehicle, error) {
	vehicle := &model.Vehicle{
		UserID:      userID,
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Color:       req.Color,
	}
	return s.repo.Create(ctx, vehicle)
}

func (s *VehicleServiceImpl) Update(ctx context.Context, userID, id int, params model.UpdateVehicleParams) (*model.Vehicle, error) {
	if err := s.checkOwnership(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, params)
}

func (s *VehicleServiceImpl) Delete(ctx context.Context, userID, id int) error {
	if err := s.checkOwnership(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *VehicleServiceImpl) checkOwnership(ctx context.Context, userID, id int) error {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle.UserID != userID {
		return apperrors.ErrVehicleNotFound
	}
	return nil
}
