package service

import (
	"context"
	"errors"
	"fmt"
	"go-parking-management/internal/mail"
	"go-parking-management/internal/model"
	"go-parking-management/internal/repository"
	"go-parking-management/internal/ticket"
	apperrors "go-parking-management/pkg/app_errors"
	"go-parking-management/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ReceiptSender delivers the exit receipt; *mail.Mailer satisfies it.
type ReceiptSender interface {
	SendReceipt(ctx context.Context, to string, receipt mail.Receipt) error
}

type EntryService interface {
	// RegisterEntry issues a ticket, creates an open entry and takes one
	// space from the slot, all in one transaction.
	RegisterEntry(ctx context.Context, req model.RegisterEntryRequest) (*model.CarEntry, error)
	// RegisterExit closes the entry, bills the stay against the slot's hourly
	// rate and returns the space, then emails a receipt best-effort. The
	// operator is the authenticated user performing the exit; they receive
	// the receipt when the plate has no registered owner.
	RegisterExit(ctx context.Context, id int, operatorID int) (*model.ExitResponse, error)
	ListEntries(ctx context.Context, q model.ListEntriesQuery) (*model.EntryPage, error)
}

type EntryServiceImpl struct {
	pool        *pgxpool.Pool
	repository  repository.EntryRepository
	slotRepo    repository.SlotRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	sender      ReceiptSender
}

func NewEntryService(
	pool *pgxpool.Pool,
	entryRepository repository.EntryRepository,
	slotRepository repository.SlotRepository,
	vehicleRepository repository.VehicleRepository,
	userRepository repository.UserRepository,
	sender ReceiptSender,
) EntryService {
	return &EntryServiceImpl{
		pool:        pool,
		repository:  entryRepository,
		slotRepo:    slotRepository,
		vehicleRepo: vehicleRepository,
		userRepo:    userRepository,
		sender:      sender,
	}
}

func (s *EntryServiceImpl) RegisterEntry(ctx context.Context, req model.RegisterEntryRequest) (*model.CarEntry, error) {
	ticketNumber, err := ticket.Generate()
	if err != nil {
		return nil, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// existence check first so a missing slot and a full slot report
	// differently; the decrement below re-checks capacity atomically
	if _, err := s.slotRepo.FindByCodeTx(ctx, tx, req.ParkingCode); err != nil {
		return nil, err
	}

	if err := s.slotRepo.DecrementAvailable(ctx, tx, req.ParkingCode); err != nil {
		return nil, err
	}

	entry := &model.CarEntry{
		PlateNumber:  req.PlateNumber,
		ParkingCode:  req.ParkingCode,
		EntryTime:    time.Now().UTC(),
		TicketNumber: ticketNumber,
	}

	created, err := s.repository.Create(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *EntryServiceImpl) RegisterExit(ctx context.Context, id int, operatorID int) (*model.ExitResponse, error) {
	entry, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entry.IsOpen() {
		return nil, apperrors.ErrAlreadyExited
	}

	exitTime := time.Now().UTC()

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	slot, err := s.slotRepo.FindByCodeTx(ctx, tx, entry.ParkingCode)
	if err != nil {
		return nil, err
	}

	amount := ComputeAmount(entry.EntryTime, exitTime, slot.FeePerHour)

	// conditional close: a concurrent exit on the same entry makes this
	// affect zero rows and the second caller gets ErrAlreadyExited
	closed, err := s.repository.CloseEntry(ctx, tx, id, exitTime, amount)
	if err != nil {
		return nil, err
	}

	if err := s.slotRepo.IncrementAvailable(ctx, tx, entry.ParkingCode); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	emailSent := s.sendReceipt(ctx, closed, slot, operatorID)

	return &model.ExitResponse{
		Message: "Car exit registered",
		Bill: &model.Bill{
			Duration: FormatDuration(closed.EntryTime, exitTime),
			Amount:   amount,
		},
		Entry:     closed,
		EmailSent: emailSent,
	}, nil
}

// sendReceipt emails the receipt to the vehicle's registered owner, falling
// back to the operator who registered the exit. Delivery failure is logged
// and reported through the returned flag; it never fails the exit.
func (s *EntryServiceImpl) sendReceipt(ctx context.Context, entry *model.CarEntry, slot *model.ParkingSlot, operatorID int) bool {
	log := logger.WithComponent("entry_service").With(zap.String("ticket", entry.TicketNumber))

	var vehicleLabel string
	recipient := ""

	vehicle, err := s.vehicleRepo.FindByPlate(ctx, entry.PlateNumber)
	switch {
	case err == nil:
		vehicleLabel = fmt.Sprintf("%s %s", vehicle.Brand, vehicle.Model)
		owner, err := s.userRepo.FindByID(ctx, vehicle.UserID)
		if err == nil {
			recipient = owner.Email
		}
	case !errors.Is(err, apperrors.ErrVehicleNotFound):
		log.Warn("vehicle lookup failed", zap.Error(err))
	}

	if recipient == "" {
		operator, err := s.userRepo.FindByID(ctx, operatorID)
		if err != nil {
			log.Warn("no receipt recipient", zap.Error(err))
			return false
		}
		recipient = operator.Email
	}

	receipt := mail.Receipt{
		TicketNumber: entry.TicketNumber,
		PlateNumber:  entry.PlateNumber,
		Vehicle:      vehicleLabel,
		ParkingCode:  entry.ParkingCode,
		EntryTime:    entry.EntryTime,
		ExitTime:     *entry.ExitTime,
		Duration:     FormatDuration(entry.EntryTime, *entry.ExitTime),
		FeePerHour:   slot.FeePerHour,
		Amount:       entry.Amount,
	}

	if err := s.sender.SendReceipt(ctx, recipient, receipt); err != nil {
		log.Warn("receipt delivery failed", zap.String("to", recipient), zap.Error(err))
		return false
	}

	return true
}

func (s *EntryServiceImpl) ListEntries(ctx context.Context, q model.ListEntriesQuery) (*model.EntryPage, error) {
	entries, total, err := s.repository.List(ctx, q.Search, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}

	return &model.EntryPage{
		Total:   total,
		Page:    q.Page,
		Limit:   q.Limit,
		Entries: entries,
	}, nil
}
