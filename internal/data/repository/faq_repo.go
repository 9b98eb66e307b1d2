package repository

import (
	"context"
	"fmt"

	"classic-rentals/internal/data/entity"
	"classic-rentals/pkg/database"

	"go.uber.org/zap"
)

type FAQRepository interface {
	FindActive(ctx context.Context, limit int) ([]*entity.FAQ, error)
}

type faqRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFAQRepository(db database.PgxIface, log *zap.Logger) FAQRepository {
	return &faqRepository{
		db:  db,
		log: log.With(zap.String("repository", "faq")),
	}
}

// FindActive returns active FAQs in display order. limit <= 0 means all.
func (r *faqRepository) FindActive(ctx context.Context, limit int) ([]*entity.FAQ, error) {
	query := `
		SELECT id, question, answer, sort_order, is_active, created_at, updated_at
		FROM faqs
		WHERE is_active = true
		ORDER BY sort_order
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find active FAQs", zap.Error(err))
		return nil, fmt.Errorf("find active faqs: %w", err)
	}
	defer rows.Close()

	var faqs []*entity.FAQ
	for rows.Next() {
		var faq entity.FAQ
		err := rows.Scan(
			&faq.ID,
			&faq.Question,
			&faq.Answer,
			&faq.SortOrder,
			&faq.IsActive,
			&faq.CreatedAt,
			&faq.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan FAQ row", zap.Error(err))
			return nil, fmt.Errorf("scan faq row: %w", err)
		}
		faqs = append(faqs, &faq)
	}

	return faqs, nil
}
