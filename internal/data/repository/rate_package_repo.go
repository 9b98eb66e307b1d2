package repository

import (
	"context"
	"fmt"

	"classic-rentals/internal/data/entity"
	"classic-rentals/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RatePackageRepository interface {
	Create(ctx context.Context, pkg *entity.RatePackage) error
	FindByID(ctx context.Context, id int64) (*entity.RatePackage, error)
	FindAll(ctx context.Context) ([]*entity.RatePackage, error)
	Update(ctx context.Context, pkg *entity.RatePackage) error
	Delete(ctx context.Context, id int64) error
}

type ratePackageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatePackageRepository(db database.PgxIface, log *zap.Logger) RatePackageRepository {
	return &ratePackageRepository{
		db:  db,
		log: log.With(zap.String("repository", "rate_package")),
	}
}

func (r *ratePackageRepository) Create(ctx context.Context, pkg *entity.RatePackage) error {
	query := `
		INSERT INTO rate_packages (label, slug, duration_hours, price, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		pkg.Label,
		pkg.Slug,
		pkg.DurationHours,
		pkg.Price,
		pkg.Description,
	).Scan(&pkg.ID, &pkg.CreatedAt, &pkg.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create rate package",
			zap.Error(err),
			zap.String("label", pkg.Label),
		)
		return fmt.Errorf("create rate package %s: %w", pkg.Label, err)
	}

	return nil
}

func (r *ratePackageRepository) FindByID(ctx context.Context, id int64) (*entity.RatePackage, error) {
	query := `
		SELECT id, label, slug, duration_hours, price, description, created_at, updated_at
		FROM rate_packages
		WHERE id = $1
	`

	var pkg entity.RatePackage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&pkg.ID,
		&pkg.Label,
		&pkg.Slug,
		&pkg.DurationHours,
		&pkg.Price,
		&pkg.Description,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rate package by ID",
			zap.Error(err),
			zap.Int64("rate_package_id", id),
		)
		return nil, fmt.Errorf("find rate package by ID %d: %w", id, err)
	}

	return &pkg, nil
}

func (r *ratePackageRepository) FindAll(ctx context.Context) ([]*entity.RatePackage, error) {
	query := `
		SELECT id, label, slug, duration_hours, price, description, created_at, updated_at
		FROM rate_packages
		ORDER BY duration_hours
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find rate packages", zap.Error(err))
		return nil, fmt.Errorf("find rate packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.RatePackage
	for rows.Next() {
		var pkg entity.RatePackage
		err := rows.Scan(
			&pkg.ID,
			&pkg.Label,
			&pkg.Slug,
			&pkg.DurationHours,
			&pkg.Price,
			&pkg.Description,
			&pkg.CreatedAt,
			&pkg.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rate package row", zap.Error(err))
			return nil, fmt.Errorf("scan rate package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	return packages, nil
}

func (r *ratePackageRepository) Update(ctx context.Context, pkg *entity.RatePackage) error {
	query := `
		UPDATE rate_packages
		SET label = $2, slug = $3, duration_hours = $4, price = $5, description = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Label,
		pkg.Slug,
		pkg.DurationHours,
		pkg.Price,
		pkg.Description,
	)

	if err != nil {
		r.log.Error("Failed to update rate package",
			zap.Error(err),
			zap.Int64("rate_package_id", pkg.ID),
		)
		return fmt.Errorf("update rate package %d: %w", pkg.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rate package %d not found", pkg.ID)
	}

	return nil
}

func (r *ratePackageRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM rate_packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete rate package",
			zap.Error(err),
			zap.Int64("rate_package_id", id),
		)
		return fmt.Errorf("delete rate package %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rate package %d not found", id)
	}

	r.log.Info("Rate package deleted", zap.Int64("rate_package_id", id))
	return nil
}
