package repository

import (
	"context"
	"fmt"

	"classic-rentals/internal/data/entity"
	"classic-rentals/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OfferingRepository interface {
	Create(ctx context.Context, offering *entity.Offering) error
	FindByID(ctx context.Context, id int64) (*entity.Offering, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Offering, error)
	FindAll(ctx context.Context) ([]*entity.Offering, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, offering *entity.Offering) error
	Delete(ctx context.Context, id int64) error
}

type offeringRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOfferingRepository(db database.PgxIface, log *zap.Logger) OfferingRepository {
	return &offeringRepository{
		db:  db,
		log: log.With(zap.String("repository", "offering")),
	}
}

func (r *offeringRepository) Create(ctx context.Context, offering *entity.Offering) error {
	query := `
		INSERT INTO offerings (title, slug, summary, description, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		offering.Title,
		offering.Slug,
		offering.Summary,
		offering.Description,
		offering.Icon,
	).Scan(&offering.ID, &offering.CreatedAt, &offering.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create offering",
			zap.Error(err),
			zap.String("slug", offering.Slug),
		)
		return fmt.Errorf("create offering %s: %w", offering.Slug, err)
	}

	return nil
}

func (r *offeringRepository) FindByID(ctx context.Context, id int64) (*entity.Offering, error) {
	query := `
		SELECT id, title, slug, summary, description, icon, created_at, updated_at
		FROM offerings
		WHERE id = $1
	`

	var offering entity.Offering
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offering.ID,
		&offering.Title,
		&offering.Slug,
		&offering.Summary,
		&offering.Description,
		&offering.Icon,
		&offering.CreatedAt,
		&offering.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find offering by ID",
			zap.Error(err),
			zap.Int64("offering_id", id),
		)
		return nil, fmt.Errorf("find offering by ID %d: %w", id, err)
	}

	return &offering, nil
}

func (r *offeringRepository) FindBySlug(ctx context.Context, slug string) (*entity.Offering, error) {
	query := `
		SELECT id, title, slug, summary, description, icon, created_at, updated_at
		FROM offerings
		WHERE slug = $1
	`

	var offering entity.Offering
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&offering.ID,
		&offering.Title,
		&offering.Slug,
		&offering.Summary,
		&offering.Description,
		&offering.Icon,
		&offering.CreatedAt,
		&offering.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find offering by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find offering by slug %s: %w", slug, err)
	}

	return &offering, nil
}

func (r *offeringRepository) FindAll(ctx context.Context) ([]*entity.Offering, error) {
	query := `
		SELECT id, title, slug, summary, description, icon, created_at, updated_at
		FROM offerings
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find offerings", zap.Error(err))
		return nil, fmt.Errorf("find offerings: %w", err)
	}
	defer rows.Close()

	var offerings []*entity.Offering
	for rows.Next() {
		var offering entity.Offering
		err := rows.Scan(
			&offering.ID,
			&offering.Title,
			&offering.Slug,
			&offering.Summary,
			&offering.Description,
			&offering.Icon,
			&offering.CreatedAt,
			&offering.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan offering row", zap.Error(err))
			return nil, fmt.Errorf("scan offering row: %w", err)
		}
		offerings = append(offerings, &offering)
	}

	return offerings, nil
}

func (r *offeringRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM offerings`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count offerings", zap.Error(err))
		return 0, fmt.Errorf("count offerings: %w", err)
	}

	return count, nil
}

func (r *offeringRepository) Update(ctx context.Context, offering *entity.Offering) error {
	query := `
		UPDATE offerings
		SET title = $2, slug = $3, summary = $4, description = $5, icon = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		offering.ID,
		offering.Title,
		offering.Slug,
		offering.Summary,
		offering.Description,
		offering.Icon,
	)

	if err != nil {
		r.log.Error("Failed to update offering",
			zap.Error(err),
			zap.Int64("offering_id", offering.ID),
		)
		return fmt.Errorf("update offering %d: %w", offering.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("offering %d not found", offering.ID)
	}

	return nil
}

func (r *offeringRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM offerings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete offering",
			zap.Error(err),
			zap.Int64("offering_id", id),
		)
		return fmt.Errorf("delete offering %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("offering %d not found", id)
	}

	r.log.Info("Offering deleted", zap.Int64("offering_id", id))
	return nil
}
