package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/metro-service/internal/domain"
)

// FeedbackRepository encapsulates rider feedback persistence.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	List(ctx context.Context) ([]domain.Feedback, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
}

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository instantiates repository.
func NewFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	const query = `
        INSERT INTO feedback (user_id, rating, comment)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		feedback.UserID,
		feedback.Rating,
		feedback.Comment,
	).Scan(&feedback.ID, &feedback.CreatedAt)
}

func (r *feedbackRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	const query = `SELECT id, user_id, rating, comment, created_at FROM feedback ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Feedback
	for rows.Next() {
		var feedback domain.Feedback
		if err := rows.Scan(
			&feedback.ID,
			&feedback.UserID,
			&feedback.Rating,
			&feedback.Comment,
			&feedback.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, feedback)
	}
	return result, rows.Err()
}

func (r *feedbackRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM feedback WHERE id=$1 AND user_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}
