package repository

import (
	"context"
	"fmt"
	"go-parking-management/internal/model"
	apperrors "go-parking-management/pkg/app_errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vehicleColumns = `id, user_id, plate_number, brand, model, color, created_at, updated_at`

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error)
	ListByUser(ctx context.Context, userID, page, limit int) ([]*model.Vehicle, int, error)
	FindByID(ctx context.Context, id int) (*model.Vehicle, error)
	FindByPlate(ctx context.Context, plateNumber string) (*model.Vehicle, error)
	Update(ctx context.Context, id int, params model.UpdateVehicleParams) (*model.Vehicle, error)
	Delete(ctx context.Context, id int) error
}

type VehicleRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) VehicleRepository {
	return &VehicleRepositoryImpl{
		pool: pool,
	}
}

func scanVehicle(row pgx.Row) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := row.Scan(
		&vehicle.ID,
		&vehicle.UserID,
		&vehicle.PlateNumber,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.Color,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepositoryImpl) Create(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	query := `
		INSERT INTO vehicles (user_id, plate_number, brand, model, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + vehicleColumns

	created, err := scanVehicle(r.pool.QueryRow(ctx, query,
		vehicle.UserID, vehicle.PlateNumber, vehicle.Brand, vehicle.Model, vehicle.Color,
	))

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrPlateTaken
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return created, nil
}

func (r *VehicleRepositoryImpl) ListByUser(ctx context.Context, userID, page, limit int) ([]*model.Vehicle, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM vehicles
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, vehicleColumns)

	rows, err := r.pool.Query(ctx, query, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vehicles := make([]*model.Vehicle, 0)

	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

func (r *VehicleRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = $1`, vehicleColumns)

	vehicle, err := scanVehicle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, err
	}

	return vehicle, nil
}

func (r *VehicleRepositoryImpl) FindByPlate(ctx context.Context, plateNumber string) (*model.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE plate_number = $1`, vehicleColumns)

	vehicle, err := scanVehicle(r.pool.QueryRow(ctx, query, plateNumber))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, err
	}

	return vehicle, nil
}

func (r *VehicleRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateVehicleParams) (*model.Vehicle, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.PlateNumber != nil {
		appendSet("plate_number", *params.PlateNumber)
	}
	if params.Brand != nil {
		appendSet("brand", *params.Brand)
	}
	if params.Model != nil {
		appendSet("model", *params.Model)
	}
	if params.Color != nil {
		appendSet("color", *params.Color)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	appendSet("updated_at", time.Now().UTC())

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE vehicles
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, vehicleColumns)

	vehicle, err := scanVehicle(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrVehicleNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrPlateTaken
		}
		return nil, err
	}

	return vehicle, nil
}

func (r *VehicleRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrVehicleNotFound
	}

	return nil
}
