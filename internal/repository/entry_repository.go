package repository

import (
	"context"
	"fmt"
	"go-parking-management/internal/model"
	apperrors "go-parking-management/pkg/app_errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `id, plate_number, parking_code, entry_time, exit_time, amount, ticket_number, created_at, updated_at`

type EntryRepository interface {
	FindByID(ctx context.Context, id int) (*model.CarEntry, error)
	List(ctx context.Context, search string, page, limit int) ([]*model.CarEntry, int, error)

	// Report queries, day-granularity inclusive ranges.
	ListExitedBetween(ctx context.Context, r model.ReportRange, page, limit int) ([]*model.CarEntry, error)
	OutgoingStats(ctx context.Context, r model.ReportRange) (total int, totalAmount float64, err error)
	ListEnteredBetween(ctx context.Context, r model.ReportRange, page, limit int) ([]*model.CarEntry, error)
	EnteredStats(ctx context.Context, r model.ReportRange) (total, active, exited int, revenue float64, err error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, entry *model.CarEntry) (*model.CarEntry, error)
	CloseEntry(ctx context.Context, tx pgx.Tx, id int, exitTime time.Time, amount float64) (*model.CarEntry, error)
}

type EntryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEntryRepository(pool *pgxpool.Pool) EntryRepository {
	return &EntryRepositoryImpl{
		pool: pool,
	}
}

func scanEntry(row pgx.Row) (*model.CarEntry, error) {
	var entry model.CarEntry
	err := row.Scan(
		&entry.ID,
		&entry.PlateNumber,
		&entry.ParkingCode,
		&entry.EntryTime,
		&entry.ExitTime,
		&entry.Amount,
		&entry.TicketNumber,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *EntryRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, entry *model.CarEntry) (*model.CarEntry, error) {
	query := `
		INSERT INTO car_entries (
			plate_number, parking_code, entry_time, exit_time, amount, ticket_number
		)
		VALUES ($1, $2, $3, NULL, 0, $4)
		RETURNING ` + entryColumns

	created, err := scanEntry(tx.QueryRow(ctx, query,
		entry.PlateNumber, entry.ParkingCode, entry.EntryTime, entry.TicketNumber,
	))

	if err != nil {
		return nil, fmt.Errorf("failed to create car entry: %w", err)
	}

	return created, nil
}

func (r *EntryRepositoryImpl) FindByID(ctx context.Context, id int) (*model.CarEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM car_entries WHERE id = $1`, entryColumns)

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

// CloseEntry finalizes the entry in one conditional update. Zero rows
// affected means the entry has already been closed by a concurrent exit, so
// amount and exit_time can only ever be set once.
func (r *EntryRepositoryImpl) CloseEntry(ctx context.Context, tx pgx.Tx, id int, exitTime time.Time, amount float64) (*model.CarEntry, error) {
	query := `
		UPDATE car_entries
		SET exit_time = $1, amount = $2, updated_at = $3
		WHERE id = $4 AND exit_time IS NULL
		RETURNING ` + entryColumns

	entry, err := scanEntry(tx.QueryRow(ctx, query, exitTime, amount, time.Now().UTC(), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAlreadyExited
		}
		return nil, fmt.Errorf("failed to close car entry: %w", err)
	}

	return entry, nil
}

func (r *EntryRepositoryImpl) List(ctx context.Context, search string, page, limit int) ([]*model.CarEntry, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = `WHERE plate_number ILIKE $1 OR parking_code ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM car_entries %s`, where)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM car_entries
		%s
		ORDER BY entry_time DESC
		LIMIT $%d OFFSET $%d
	`, entryColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	entries, err := r.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *EntryRepositoryImpl) ListExitedBetween(ctx context.Context, rng model.ReportRange, page, limit int) ([]*model.CarEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM car_entries
		WHERE exit_time IS NOT NULL AND exit_time >= $1 AND exit_time < $2
		ORDER BY exit_time DESC
		LIMIT $3 OFFSET $4
	`, entryColumns)

	return r.queryEntries(ctx, query, rng.Start, rng.End, limit, (page-1)*limit)
}

func (r *EntryRepositoryImpl) OutgoingStats(ctx context.Context, rng model.ReportRange) (int, float64, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM car_entries
		WHERE exit_time IS NOT NULL AND exit_time >= $1 AND exit_time < $2
	`

	var total int
	var totalAmount float64
	err := r.pool.QueryRow(ctx, query, rng.Start, rng.End).Scan(&total, &totalAmount)
	if err != nil {
		return 0, 0, err
	}

	return total, totalAmount, nil
}

func (r *EntryRepositoryImpl) ListEnteredBetween(ctx context.Context, rng model.ReportRange, page, limit int) ([]*model.CarEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM car_entries
		WHERE entry_time >= $1 AND entry_time < $2
		ORDER BY entry_time DESC
		LIMIT $3 OFFSET $4
	`, entryColumns)

	return r.queryEntries(ctx, query, rng.Start, rng.End, limit, (page-1)*limit)
}

func (r *EntryRepositoryImpl) EnteredStats(ctx context.Context, rng model.ReportRange) (int, int, int, float64, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE exit_time IS NULL),
		       COUNT(*) FILTER (WHERE exit_time IS NOT NULL),
		       COALESCE(SUM(amount) FILTER (WHERE exit_time IS NOT NULL), 0)
		FROM car_entries
		WHERE entry_time >= $1 AND entry_time < $2
	`

	var total, active, exited int
	var revenue float64
	err := r.pool.QueryRow(ctx, query, rng.Start, rng.End).Scan(&total, &active, &exited, &revenue)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	return total, active, exited, revenue, nil
}

func (r *EntryRepositoryImpl) queryEntries(ctx context.Context, query string, args ...interface{}) ([]*model.CarEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*model.CarEntry, 0)

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
