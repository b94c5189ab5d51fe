package repository

import (
	"context"
	"fmt"

	"autohub-service/internal/data/entity"
	"autohub-service/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error)
	FindAvailable(ctx context.Context) ([]*entity.Car, error)
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type carRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCarRepository(db database.PgxIface, log *zap.Logger) CarRepository {
	return &carRepository{
		db:  db,
		log: log.With(zap.String("repository", "car")),
	}
}

const carColumns = `id, name, model, year, price_per_day, capacity, transmission,
	fuel_type, location, image_url, description, is_available, created_at, updated_at`

func (r *carRepository) Create(ctx context.Context, car *entity.Car) error {
	query := `
		INSERT INTO cars (id, name, model, year, price_per_day, capacity, transmission,
		                  fuel_type, location, image_url, description, is_available,
		                  created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		car.ID, car.Name, car.Model, car.Year, car.PricePerDay, car.Capacity,
		car.Transmission, car.FuelType, car.Location, car.ImageURL, car.Description,
		car.IsAvailable, car.CreatedAt, car.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create car", zap.Error(err), zap.String("name", car.Name))
		return fmt.Errorf("create car %s: %w", car.Name, err)
	}

	return nil
}

func scanCar(row pgx.Row) (*entity.Car, error) {
	var c entity.Car
	err := row.Scan(
		&c.ID, &c.Name, &c.Model, &c.Year, &c.PricePerDay, &c.Capacity,
		&c.Transmission, &c.FuelType, &c.Location, &c.ImageURL, &c.Description,
		&c.IsAvailable, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`

	car, err := scanCar(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car by ID", zap.Error(err), zap.String("car_id", id.String()))
		return nil, fmt.Errorf("find car by ID %s: %w", id.String(), err)
	}

	return car, nil
}

func (r *carRepository) FindAvailable(ctx context.Context) ([]*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE is_available = TRUE ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list available cars", zap.Error(err))
		return nil, fmt.Errorf("list available cars: %w", err)
	}
	defer rows.Close()

	var cars []*entity.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car row: %w", err)
		}
		cars = append(cars, car)
	}

	return cars, rows.Err()
}

func (r *carRepository) Update(ctx context.Context, car *entity.Car) error {
	query := `
		UPDATE cars
		SET name = $2, model = $3, year = $4, price_per_day = $5, capacity = $6,
		    transmission = $7, fuel_type = $8, location = $9, image_url = $10,
		    description = $11, is_available = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		car.ID, car.Name, car.Model, car.Year, car.PricePerDay, car.Capacity,
		car.Transmission, car.FuelType, car.Location, car.ImageURL, car.Description,
		car.IsAvailable, car.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update car", zap.Error(err), zap.String("car_id", car.ID.String()))
		return fmt.Errorf("update car %s: %w", car.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car %s not found", car.ID.String())
	}

	return nil
}

func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cars WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete car", zap.Error(err), zap.String("car_id", id.String()))
		return fmt.Errorf("delete car %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car %s not found", id.String())
	}

	return nil
}
