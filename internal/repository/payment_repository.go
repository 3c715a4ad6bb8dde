package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/metro-service/internal/domain"
)

// YearRevenue is one bucket of the yearly revenue aggregation.
type YearRevenue struct {
	Year  int
	Total float64
}

// PaymentRepository encapsulates payment persistence and the revenue
// aggregates consumed by the analytics summary.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetOwned(ctx context.Context, id, userID int64) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
	UpdateOwned(ctx context.Context, payment *domain.Payment) error
	DeleteOwned(ctx context.Context, id, userID int64) error
	TotalAmount(ctx context.Context) (float64, error)
	RevenueByYear(ctx context.Context) ([]YearRevenue, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository instantiates repository.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

const paymentColumns = `id, user_id, method, reference, amount, created_at`

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (user_id, method, reference, amount)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		payment.UserID,
		payment.Method,
		payment.Reference,
		payment.Amount,
	).Scan(&payment.ID, &payment.CreatedAt)
}

func (r *paymentRepository) GetOwned(ctx context.Context, id, userID int64) (*domain.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1 AND user_id=$2`

	var payment domain.Payment
	if err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.Method,
		&payment.Reference,
		&payment.Amount,
		&payment.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE user_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepository) UpdateOwned(ctx context.Context, payment *domain.Payment) error {
	const query = `
        UPDATE payments SET method=$1, reference=$2, amount=$3
        WHERE id=$4 AND user_id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		payment.Method,
		payment.Reference,
		payment.Amount,
		payment.ID,
		payment.UserID,
	)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}

func (r *paymentRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM payments WHERE id=$1 AND user_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}

func (r *paymentRepository) TotalAmount(ctx context.Context) (float64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM payments`

	var total float64
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *paymentRepository) RevenueByYear(ctx context.Context) ([]YearRevenue, error) {
	const query = `
        SELECT EXTRACT(YEAR FROM created_at)::int AS year, SUM(amount)
        FROM payments
        GROUP BY year
        ORDER BY year ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []YearRevenue
	for rows.Next() {
		var entry YearRevenue
		if err := rows.Scan(&entry.Year, &entry.Total); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func scanPayments(rows pgx.Rows) ([]domain.Payment, error) {
	var result []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.UserID,
			&payment.Method,
			&payment.Reference,
			&payment.Amount,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}
