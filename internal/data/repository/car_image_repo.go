package repository

import (
	"context"
	"fmt"

	"classic-rentals/internal/data/entity"
	"classic-rentals/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CarImageRepository interface {
	FindByCarID(ctx context.Context, carID int64) ([]*entity.CarImage, error)
	FindPrimaryByCarID(ctx context.Context, carID int64) (*entity.CarImage, error)
	ReplaceForCar(ctx context.Context, carID int64, images []*entity.CarImage) error
}

type carImageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCarImageRepository(db database.PgxIface, log *zap.Logger) CarImageRepository {
	return &carImageRepository{
		db:  db,
		log: log.With(zap.String("repository", "car_image")),
	}
}

func (r *carImageRepository) FindByCarID(ctx context.Context, carID int64) ([]*entity.CarImage, error) {
	query := `
		SELECT id, car_id, url, alt_text, is_primary, created_at
		FROM car_images
		WHERE car_id = $1
		ORDER BY is_primary DESC, id
	`

	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		r.log.Error("Failed to find car images",
			zap.Error(err),
			zap.Int64("car_id", carID),
		)
		return nil, fmt.Errorf("find images for car %d: %w", carID, err)
	}
	defer rows.Close()

	var images []*entity.CarImage
	for rows.Next() {
		var image entity.CarImage
		err := rows.Scan(
			&image.ID,
			&image.CarID,
			&image.URL,
			&image.AltText,
			&image.IsPrimary,
			&image.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan car image row", zap.Error(err))
			return nil, fmt.Errorf("scan car image row: %w", err)
		}
		images = append(images, &image)
	}

	return images, nil
}

func (r *carImageRepository) FindPrimaryByCarID(ctx context.Context, carID int64) (*entity.CarImage, error) {
	query := `
		SELECT id, car_id, url, alt_text, is_primary, created_at
		FROM car_images
		WHERE car_id = $1
		ORDER BY is_primary DESC, id
		LIMIT 1
	`

	var image entity.CarImage
	err := r.db.QueryRow(ctx, query, carID).Scan(
		&image.ID,
		&image.CarID,
		&image.URL,
		&image.AltText,
		&image.IsPrimary,
		&image.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find primary car image",
			zap.Error(err),
			zap.Int64("car_id", carID),
		)
		return nil, fmt.Errorf("find primary image for car %d: %w", carID, err)
	}

	return &image, nil
}

// ReplaceForCar swaps the full image set, mirroring how the admin form
// re-submits every line on save
func (r *carImageRepository) ReplaceForCar(ctx context.Context, carID int64, images []*entity.CarImage) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM car_images WHERE car_id = $1`, carID); err != nil {
		r.log.Error("Failed to clear car images",
			zap.Error(err),
			zap.Int64("car_id", carID),
		)
		return fmt.Errorf("clear images for car %d: %w", carID, err)
	}

	query := `
		INSERT INTO car_images (car_id, url, alt_text, is_primary)
		VALUES ($1, $2, $3, $4)
	`

	for _, image := range images {
		if _, err := r.db.Exec(ctx, query, carID, image.URL, image.AltText, image.IsPrimary); err != nil {
			r.log.Error("Failed to insert car image",
				zap.Error(err),
				zap.Int64("car_id", carID),
				zap.String("url", image.URL),
			)
			return fmt.Errorf("insert image for car %d: %w", carID, err)
		}
	}

	return nil
}
