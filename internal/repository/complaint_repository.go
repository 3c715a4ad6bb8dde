package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/metro-service/internal/domain"
)

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetOwned(ctx context.Context, id, userID int64) (*domain.Complaint, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Complaint, error)
	SetStatusOwned(ctx context.Context, id, userID int64, status domain.ComplaintStatus) error
	DeleteOwned(ctx context.Context, id, userID int64) error
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

const complaintColumns = `id, user_id, title, description, urgency, status, submitted_at`

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (user_id, title, description, urgency, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, submitted_at`

	return r.pool.QueryRow(ctx, query,
		complaint.UserID,
		complaint.Title,
		complaint.Description,
		complaint.Urgency,
		complaint.Status,
	).Scan(&complaint.ID, &complaint.SubmittedAt)
}

func (r *complaintRepository) GetOwned(ctx context.Context, id, userID int64) (*domain.Complaint, error) {
	const query = `SELECT ` + complaintColumns + ` FROM complaints WHERE id=$1 AND user_id=$2`

	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&complaint.ID,
		&complaint.UserID,
		&complaint.Title,
		&complaint.Description,
		&complaint.Urgency,
		&complaint.Status,
		&complaint.SubmittedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Complaint, error) {
	const query = `SELECT ` + complaintColumns + ` FROM complaints WHERE user_id=$1 ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.UserID,
			&complaint.Title,
			&complaint.Description,
			&complaint.Urgency,
			&complaint.Status,
			&complaint.SubmittedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}

func (r *complaintRepository) SetStatusOwned(ctx context.Context, id, userID int64, status domain.ComplaintStatus) error {
	const query = `UPDATE complaints SET status=$1 WHERE id=$2 AND user_id=$3`

	cmd, err := r.pool.Exec(ctx, query, status, id, userID)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}

func (r *complaintRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM complaints WHERE id=$1 AND user_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}
