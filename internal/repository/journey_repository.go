package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/metro-service/internal/domain"
)

// JourneyRepository encapsulates journey persistence.
type JourneyRepository interface {
	Create(ctx context.Context, journey *domain.Journey) error
	GetOwned(ctx context.Context, id, userID int64) (*domain.Journey, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Journey, error)
	UpdateOwned(ctx context.Context, journey *domain.Journey) error
	DeleteOwned(ctx context.Context, id, userID int64) error
	Count(ctx context.Context) (int64, error)
}

type journeyRepository struct {
	pool *pgxpool.Pool
}

// NewJourneyRepository instantiates repository.
func NewJourneyRepository(pool *pgxpool.Pool) JourneyRepository {
	return &journeyRepository{pool: pool}
}

const journeyColumns = `id, user_id, route, travel_date, fare, payment_id`

func (r *journeyRepository) Create(ctx context.Context, journey *domain.Journey) error {
	const query = `
        INSERT INTO journeys (user_id, route, travel_date, fare, payment_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		journey.UserID,
		journey.Route,
		journey.TravelDate,
		journey.Fare,
		journey.PaymentID,
	).Scan(&journey.ID)
}

func (r *journeyRepository) GetOwned(ctx context.Context, id, userID int64) (*domain.Journey, error) {
	const query = `SELECT ` + journeyColumns + ` FROM journeys WHERE id=$1 AND user_id=$2`

	var journey domain.Journey
	if err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&journey.ID,
		&journey.UserID,
		&journey.Route,
		&journey.TravelDate,
		&journey.Fare,
		&journey.PaymentID,
	); err != nil {
		return nil, err
	}
	return &journey, nil
}

func (r *journeyRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Journey, error) {
	const query = `SELECT ` + journeyColumns + ` FROM journeys WHERE user_id=$1 ORDER BY travel_date DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJourneys(rows)
}

func (r *journeyRepository) UpdateOwned(ctx context.Context, journey *domain.Journey) error {
	const query = `
        UPDATE journeys SET route=$1, travel_date=$2, fare=$3, payment_id=$4
        WHERE id=$5 AND user_id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		journey.Route,
		journey.TravelDate,
		journey.Fare,
		journey.PaymentID,
		journey.ID,
		journey.UserID,
	)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}

func (r *journeyRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM journeys WHERE id=$1 AND user_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}

func (r *journeyRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM journeys`
	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanJourneys(rows pgx.Rows) ([]domain.Journey, error) {
	var result []domain.Journey
	for rows.Next() {
		var journey domain.Journey
		if err := rows.Scan(
			&journey.ID,
			&journey.UserID,
			&journey.Route,
			&journey.TravelDate,
			&journey.Fare,
			&journey.PaymentID,
		); err != nil {
			return nil, err
		}
		result = append(result, journey)
	}
	return result, rows.Err()
}
