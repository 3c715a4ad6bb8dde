package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/metro-service/internal/domain"
)

// ServiceAlertRepository encapsulates network alert persistence.
type ServiceAlertRepository interface {
	Create(ctx context.Context, alert *domain.ServiceAlert) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceAlert, error)
	List(ctx context.Context) ([]domain.ServiceAlert, error)
	ListActive(ctx context.Context) ([]domain.ServiceAlert, error)
	Update(ctx context.Context, alert *domain.ServiceAlert) error
	Delete(ctx context.Context, id int64) error
}

type serviceAlertRepository struct {
	pool *pgxpool.Pool
}

// NewServiceAlertRepository instantiates repository.
func NewServiceAlertRepository(pool *pgxpool.Pool) ServiceAlertRepository {
	return &serviceAlertRepository{pool: pool}
}

const alertColumns = `id, title, message, affected_stations, estimated_duration, alternative_routes, is_active, created_at, created_by`

func (r *serviceAlertRepository) Create(ctx context.Context, alert *domain.ServiceAlert) error {
	const query = `
        INSERT INTO service_alerts (title, message, affected_stations, estimated_duration, alternative_routes, is_active, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		alert.Title,
		alert.Message,
		alert.AffectedStations,
		alert.EstimatedDuration,
		alert.AlternativeRoutes,
		alert.IsActive,
		alert.CreatedBy,
	).Scan(&alert.ID, &alert.CreatedAt)
}

func (r *serviceAlertRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceAlert, error) {
	const query = `SELECT ` + alertColumns + ` FROM service_alerts WHERE id=$1`

	var alert domain.ServiceAlert
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&alert.ID,
		&alert.Title,
		&alert.Message,
		&alert.AffectedStations,
		&alert.EstimatedDuration,
		&alert.AlternativeRoutes,
		&alert.IsActive,
		&alert.CreatedAt,
		&alert.CreatedBy,
	); err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *serviceAlertRepository) List(ctx context.Context) ([]domain.ServiceAlert, error) {
	const query = `SELECT ` + alertColumns + ` FROM service_alerts ORDER BY created_at DESC`
	return r.fetchMany(ctx, query)
}

func (r *serviceAlertRepository) ListActive(ctx context.Context) ([]domain.ServiceAlert, error) {
	const query = `SELECT ` + alertColumns + ` FROM service_alerts WHERE is_active ORDER BY created_at DESC`
	return r.fetchMany(ctx, query)
}

func (r *serviceAlertRepository) fetchMany(ctx context.Context, query string) ([]domain.ServiceAlert, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAlerts(rows)
}

func (r *serviceAlertRepository) Update(ctx context.Context, alert *domain.ServiceAlert) error {
	const query = `
        UPDATE service_alerts SET title=$1, message=$2, affected_stations=$3,
            estimated_duration=$4, alternative_routes=$5, is_active=$6
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		alert.Title,
		alert.Message,
		alert.AffectedStations,
		alert.EstimatedDuration,
		alert.AlternativeRoutes,
		alert.IsActive,
		alert.ID,
	)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}

func (r *serviceAlertRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM service_alerts WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}

func scanAlerts(rows pgx.Rows) ([]domain.ServiceAlert, error) {
	var result []domain.ServiceAlert
	for rows.Next() {
		var alert domain.ServiceAlert
		if err := rows.Scan(
			&alert.ID,
			&alert.Title,
			&alert.Message,
			&alert.AffectedStations,
			&alert.EstimatedDuration,
			&alert.AlternativeRoutes,
			&alert.IsActive,
			&alert.CreatedAt,
			&alert.CreatedBy,
		); err != nil {
			return nil, err
		}
		result = append(result, alert)
	}
	return result, rows.Err()
}
