package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/metro-service/internal/domain"
)

// QuizResultRepository encapsulates quiz score persistence.
type QuizResultRepository interface {
	Create(ctx context.Context, result *domain.QuizResult) error
	ListByUser(ctx context.Context, userID int64) ([]domain.QuizResult, error)
}

type quizResultRepository struct {
	pool *pgxpool.Pool
}

// NewQuizResultRepository instantiates repository.
func NewQuizResultRepository(pool *pgxpool.Pool) QuizResultRepository {
	return &quizResultRepository{pool: pool}
}

func (r *quizResultRepository) Create(ctx context.Context, result *domain.QuizResult) error {
	const query = `
        INSERT INTO quiz_results (user_id, score, total)
        VALUES ($1, $2, $3)
        RETURNING id, submitted_at`

	return r.pool.QueryRow(ctx, query,
		result.UserID,
		result.Score,
		result.Total,
	).Scan(&result.ID, &result.SubmittedAt)
}

func (r *quizResultRepository) ListByUser(ctx context.Context, userID int64) ([]domain.QuizResult, error) {
	const query = `
        SELECT id, user_id, score, total, submitted_at
        FROM quiz_results WHERE user_id=$1
        ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.QuizResult
	for rows.Next() {
		var entry domain.QuizResult
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Score,
			&entry.Total,
			&entry.SubmittedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
