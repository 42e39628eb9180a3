package service

import (
	"context"
	"go-parking-management/internal/model"
	"go-parking-management/internal/repository"
)

type SlotService interface {
	List(ctx context.Context, search string, page, limit int) (*model.SlotPage, error)
	GetByID(ctx context.Context, id int) (*model.ParkingSlot, error)
	Create(ctx context.Context, req model.CreateSlotRequest) (*model.ParkingSlot, error)
	Update(ctx context.Context, id int, params model.UpdateSlotParams) (*model.ParkingSlot, error)
	Delete(ctx context.Context, id int) error
}

type SlotServiceImpl struct {
	repo repository.SlotRepository
}

func NewSlotService(repo repository.SlotRepository) SlotService {
	return &SlotServiceImpl{repo: repo}
}

func (s *SlotServiceImpl) List(ctx context.Context, search string, page, limit int) (*model.SlotPage, error) {
	slots, total, err := s.repo.List(ctx, search, page, limit)
	if err != nil {
		return nil, err
	}

	return &model.SlotPage{
		Total: total,
		Page:  page,
		Limit: limit,
		Slots: slots,
	}, nil
}

func (s *SlotServiceImpl) GetByID(ctx context.Context, id int) (*model.ParkingSlot, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SlotServiceImpl) Create(ctx context.Context, req model.CreateSlotRequest) (*model.ParkingSlot, error) {
	slot := &model.ParkingSlot{
		Code:            req.Code,
		Name:            req.Name,
		Location:        req.Location,
		FeePerHour:      req.FeePerHour,
		TotalSpaces:     req.TotalSpaces,
		AvailableSpaces: req.TotalSpaces, // a new slot starts with every space free
	}
	return s.repo.Create(ctx, slot)
}

func (s *SlotServiceImpl) Update(ctx context.Context, id int, params model.UpdateSlotParams) (*model.ParkingSlot, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *SlotServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
