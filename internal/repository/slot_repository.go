package repository

import (
	"context"
	"errors"
	"fmt"
	"go-parking-management/internal/model"
	apperrors "go-parking-management/pkg/app_errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const slotColumns = `id, code, name, location, fee_per_hour, total_spaces, available_spaces, created_at, updated_at`

type SlotRepository interface {
	Create(ctx context.Context, slot *model.ParkingSlot) (*model.ParkingSlot, error)
	List(ctx context.Context, search string, page, limit int) ([]*model.ParkingSlot, int, error)
	FindByID(ctx context.Context, id int) (*model.ParkingSlot, error)
	FindByCode(ctx context.Context, code string) (*model.ParkingSlot, error)
	Update(ctx context.Context, id int, params model.UpdateSlotParams) (*model.ParkingSlot, error)
	Delete(ctx context.Context, id int) error

	// Transaction methods
	FindByCodeTx(ctx context.Context, tx pgx.Tx, code string) (*model.ParkingSlot, error)
	DecrementAvailable(ctx context.Context, tx pgx.Tx, code string) error
	IncrementAvailable(ctx context.Context, tx pgx.Tx, code string) error
}

type SlotRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) SlotRepository {
	return &SlotRepositoryImpl{
		pool: pool,
	}
}

func scanSlot(row pgx.Row) (*model.ParkingSlot, error) {
	var slot model.ParkingSlot
	err := row.Scan(
		&slot.ID,
		&slot.Code,
		&slot.Name,
		&slot.Location,
		&slot.FeePerHour,
		&slot.TotalSpaces,
		&slot.AvailableSpaces,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *SlotRepositoryImpl) Create(ctx context.Context, slot *model.ParkingSlot) (*model.ParkingSlot, error) {
	query := `
		INSERT INTO parking_slots (
		code, name, location, fee_per_hour, total_spaces, available_spaces)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + slotColumns

	created, err := scanSlot(r.pool.QueryRow(ctx, query,
		slot.Code, slot.Name, slot.Location,
		slot.FeePerHour, slot.TotalSpaces, slot.AvailableSpaces,
	))

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrSlotCodeTaken
		}
		return nil, err
	}

	return created, nil
}

func (r *SlotRepositoryImpl) List(ctx context.Context, search string, page, limit int) ([]*model.ParkingSlot, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = `WHERE code ILIKE $1 OR name ILIKE $1 OR location ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM parking_slots %s`, where)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM parking_slots
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, slotColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	slots := make([]*model.ParkingSlot, 0)

	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, 0, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return slots, total, nil
}

func (r *SlotRepositoryImpl) FindByID(ctx context.Context, id int) (*model.ParkingSlot, error) {
	query := fmt.Sprintf(`SELECT %s FROM parking_slots WHERE id = $1`, slotColumns)

	slot, err := scanSlot(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, err
	}

	return slot, nil
}

func (r *SlotRepositoryImpl) FindByCode(ctx context.Context, code string) (*model.ParkingSlot, error) {
	query := fmt.Sprintf(`SELECT %s FROM parking_slots WHERE code = $1`, slotColumns)

	slot, err := scanSlot(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, err
	}

	return slot, nil
}

func (r *SlotRepositoryImpl) FindByCodeTx(ctx context.Context, tx pgx.Tx, code string) (*model.ParkingSlot, error) {
	query := fmt.Sprintf(`SELECT %s FROM parking_slots WHERE code = $1`, slotColumns)

	slot, err := scanSlot(tx.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, err
	}

	return slot, nil
}

func (r *SlotRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateSlotParams) (*model.ParkingSlot, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}
	if params.Location != nil {
		sets = append(sets, fmt.Sprintf("location = $%d", argPos))
		args = append(args, *params.Location)
		argPos++
	}
	if params.FeePerHour != nil {
		sets = append(sets, fmt.Sprintf("fee_per_hour = $%d", argPos))
		args = append(args, *params.FeePerHour)
		argPos++
	}
	if params.TotalSpaces != nil {
		// changing capacity shifts the available count by the same delta,
		// clamped so it never goes negative
		sets = append(sets, fmt.Sprintf(
			"available_spaces = GREATEST(0, available_spaces + ($%d - total_spaces)), total_spaces = $%d",
			argPos, argPos))
		args = append(args, *params.TotalSpaces)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE parking_slots
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, slotColumns)

	slot, err := scanSlot(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, err
	}

	return slot, nil
}

// DecrementAvailable takes one space, or reports ErrNoAvailableSpaces when the
// slot is full. The availability check and the mutation are a single
// conditional update so concurrent entries cannot oversubscribe the slot.
func (r *SlotRepositoryImpl) DecrementAvailable(ctx context.Context, tx pgx.Tx, code string) error {
	query := `
		UPDATE parking_slots
		SET available_spaces = available_spaces - 1, updated_at = $1
		WHERE code = $2 AND available_spaces > 0
	`

	result, err := tx.Exec(ctx, query, time.Now().UTC(), code)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNoAvailableSpaces
	}

	return nil
}

// IncrementAvailable returns one space, capped at total_spaces so a release
// after an admin shrank the slot cannot push availability above capacity. A
// slot already at capacity is a no-op, not an error.
func (r *SlotRepositoryImpl) IncrementAvailable(ctx context.Context, tx pgx.Tx, code string) error {
	query := `
		UPDATE parking_slots
		SET available_spaces = available_spaces + 1, updated_at = $1
		WHERE code = $2 AND available_spaces < total_spaces
	`

	result, err := tx.Exec(ctx, query, time.Now().UTC(), code)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM parking_slots WHERE code = $1)`, code).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrSlotNotFound
		}
	}

	return nil
}

func (r *SlotRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM parking_slots WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrSlotNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
