package repository

import (
	"context"
	"fmt"

	"classic-rentals/internal/data/entity"
	"classic-rentals/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CarFilter narrows the fleet listing
type CarFilter struct {
	Search   string
	Location string
}

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	FindByID(ctx context.Context, id int64) (*entity.Car, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Car, error)
	FindAll(ctx context.Context, filter CarFilter) ([]*entity.Car, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.Car, error)
	FindRelated(ctx context.Context, excludeID int64, limit int) ([]*entity.Car, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id int64) error
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

const carColumns = `id, name, make, model, slug, year, engine, displacement_cc, transmission,
		seating_capacity, location, availability_note, short_description, long_description,
		hourly_rate, minimum_hours, created_at, updated_at`

func scanCar(row pgx.Row) (*entity.Car, error) {
	var car entity.Car
	err := row.Scan(
		&car.ID,
		&car.Name,
		&car.Make,
		&car.Model,
		&car.Slug,
		&car.Year,
		&car.Engine,
		&car.DisplacementCc,
		&car.Transmission,
		&car.SeatingCapacity,
		&car.Location,
		&car.AvailabilityNote,
		&car.ShortDescription,
		&car.LongDescription,
		&car.HourlyRate,
		&car.MinimumHours,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) Create(ctx context.Context, car *entity.Car) error {
	query := `
		INSERT INTO cars (name, make, model, slug, year, engine, displacement_cc, transmission,
			seating_capacity, location, availability_note, short_description, long_description,
			hourly_rate, minimum_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		car.Name,
		car.Make,
		car.Model,
		car.Slug,
		car.Year,
		car.Engine,
		car.DisplacementCc,
		car.Transmission,
		car.SeatingCapacity,
		car.Location,
		car.AvailabilityNote,
		car.ShortDescription,
		car.LongDescription,
		car.HourlyRate,
		car.MinimumHours,
	).Scan(&car.ID, &car.CreatedAt, &car.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create car",
			zap.Error(err),
			zap.String("slug", car.Slug),
		)
		return fmt.Errorf("create car %s: %w", car.Slug, err)
	}

	return nil
}

func (r *carRepository) FindByID(ctx context.Context, id int64) (*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`

	car, err := scanCar(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car by ID",
			zap.Error(err),
			zap.Int64("car_id", id),
		)
		return nil, fmt.Errorf("find car by ID %d: %w", id, err)
	}

	return car, nil
}

func (r *carRepository) FindBySlug(ctx context.Context, slug string) (*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE slug = $1`

	car, err := scanCar(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find car by slug %s: %w", slug, err)
	}

	return car, nil
}

func (r *carRepository) FindAll(ctx context.Context, filter CarFilter) ([]*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE 1=1`
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR make ILIKE $%d OR model ILIKE $%d)", n, n, n)
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		query += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find cars",
			zap.Error(err),
			zap.String("search", filter.Search),
			zap.String("location", filter.Location),
		)
		return nil, fmt.Errorf("find cars: %w", err)
	}
	defer rows.Close()

	var cars []*entity.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			r.log.Error("Failed to scan car row", zap.Error(err))
			return nil, fmt.Errorf("scan car row: %w", err)
		}
		cars = append(cars, car)
	}

	return cars, nil
}

func (r *carRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find recent cars", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("find recent cars: %w", err)
	}
	defer rows.Close()

	var cars []*entity.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			r.log.Error("Failed to scan car row", zap.Error(err))
			return nil, fmt.Errorf("scan car row: %w", err)
		}
		cars = append(cars, car)
	}

	return cars, nil
}

func (r *carRepository) FindRelated(ctx context.Context, excludeID int64, limit int) ([]*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id <> $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, excludeID, limit)
	if err != nil {
		r.log.Error("Failed to find related cars",
			zap.Error(err),
			zap.Int64("exclude_id", excludeID),
		)
		return nil, fmt.Errorf("find related cars: %w", err)
	}
	defer rows.Close()

	var cars []*entity.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			r.log.Error("Failed to scan car row", zap.Error(err))
			return nil, fmt.Errorf("scan car row: %w", err)
		}
		cars = append(cars, car)
	}

	return cars, nil
}

func (r *carRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM cars`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count cars", zap.Error(err))
		return 0, fmt.Errorf("count cars: %w", err)
	}

	return count, nil
}

func (r *carRepository) Update(ctx context.Context, car *entity.Car) error {
	query := `
		UPDATE cars
		SET name = $2, make = $3, model = $4, slug = $5, year = $6, engine = $7,
		    displacement_cc = $8, transmission = $9, seating_capacity = $10, location = $11,
		    availability_note = $12, short_description = $13, long_description = $14,
		    hourly_rate = $15, minimum_hours = $16, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		car.ID,
		car.Name,
		car.Make,
		car.Model,
		car.Slug,
		car.Year,
		car.Engine,
		car.DisplacementCc,
		car.Transmission,
		car.SeatingCapacity,
		car.Location,
		car.AvailabilityNote,
		car.ShortDescription,
		car.LongDescription,
		car.HourlyRate,
		car.MinimumHours,
	)

	if err != nil {
		r.log.Error("Failed to update car",
			zap.Error(err),
			zap.Int64("car_id", car.ID),
		)
		return fmt.Errorf("update car %d: %w", car.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car %d not found", car.ID)
	}

	return nil
}

func (r *carRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM cars WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete car",
			zap.Error(err),
			zap.Int64("car_id", id),
		)
		return fmt.Errorf("delete car %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car %d not found", id)
	}

	r.log.Info("Car deleted", zap.Int64("car_id", id))
	return nil
}
