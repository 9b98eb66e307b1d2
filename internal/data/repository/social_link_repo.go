package repository

import (
	"context"
	"fmt"

	"classic-rentals/internal/data/entity"
	"classic-rentals/pkg/database"

	"go.uber.org/zap"
)

type SocialLinkRepository interface {
	FindAll(ctx context.Context) ([]*entity.SocialLink, error)
}

type socialLinkRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSocialLinkRepository(db database.PgxIface, log *zap.Logger) SocialLinkRepository {
	return &socialLinkRepository{
		db:  db,
		log: log.With(zap.String("repository", "social_link")),
	}
}

func (r *socialLinkRepository) FindAll(ctx context.Context) ([]*entity.SocialLink, error) {
	query := `
		SELECT id, platform, url, handle, created_at, updated_at
		FROM social_links
		ORDER BY platform
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find social links", zap.Error(err))
		return nil, fmt.Errorf("find social links: %w", err)
	}
	defer rows.Close()

	var links []*entity.SocialLink
	for rows.Next() {
		var link entity.SocialLink
		err := rows.Scan(
			&link.ID,
			&link.Platform,
			&link.URL,
			&link.Handle,
			&link.CreatedAt,
			&link.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan social link row", zap.Error(err))
			return nil, fmt.Errorf("scan social link row: %w", err)
		}
		links = append(links, &link)
	}

	return links, nil
}
