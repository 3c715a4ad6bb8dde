package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/metro-service/internal/domain"
)

// LostReportRepository encapsulates rider lost-property reports.
type LostReportRepository interface {
	Create(ctx context.Context, report *domain.LostReport) error
	GetOwned(ctx context.Context, id, userID int64) (*domain.LostReport, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.LostReport, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
}

type lostReportRepository struct {
	pool *pgxpool.Pool
}

// NewLostReportRepository instantiates repository.
func NewLostReportRepository(pool *pgxpool.Pool) LostReportRepository {
	return &lostReportRepository{pool: pool}
}

const lostReportColumns = `id, user_id, title, description, contact, submitted_at`

func (r *lostReportRepository) Create(ctx context.Context, report *domain.LostReport) error {
	const query = `
        INSERT INTO lost_reports (user_id, title, description, contact)
        VALUES ($1, $2, $3, $4)
        RETURNING id, submitted_at`

	return r.pool.QueryRow(ctx, query,
		report.UserID,
		report.Title,
		report.Description,
		report.Contact,
	).Scan(&report.ID, &report.SubmittedAt)
}

func (r *lostReportRepository) GetOwned(ctx context.Context, id, userID int64) (*domain.LostReport, error) {
	const query = `SELECT ` + lostReportColumns + ` FROM lost_reports WHERE id=$1 AND user_id=$2`

	var report domain.LostReport
	if err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&report.ID,
		&report.UserID,
		&report.Title,
		&report.Description,
		&report.Contact,
		&report.SubmittedAt,
	); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *lostReportRepository) ListByUser(ctx context.Context, userID int64) ([]domain.LostReport, error) {
	const query = `SELECT ` + lostReportColumns + ` FROM lost_reports WHERE user_id=$1 ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LostReport
	for rows.Next() {
		var report domain.LostReport
		if err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.Title,
			&report.Description,
			&report.Contact,
			&report.SubmittedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	return result, rows.Err()
}

func (r *lostReportRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM lost_reports WHERE id=$1 AND user_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}
