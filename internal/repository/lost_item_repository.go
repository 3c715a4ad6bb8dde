package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/metro-service/internal/domain"
)

// LostItemRepository encapsulates found-item persistence. Lost items are
// readable by anyone; writes go through the posting user.
type LostItemRepository interface {
	Create(ctx context.Context, item *domain.LostItem) error
	GetByID(ctx context.Context, id int64) (*domain.LostItem, error)
	List(ctx context.Context) ([]domain.LostItem, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LostItemStatus) error
	Delete(ctx context.Context, id int64) error
}

type lostItemRepository struct {
	pool *pgxpool.Pool
}

// NewLostItemRepository instantiates repository.
func NewLostItemRepository(pool *pgxpool.Pool) LostItemRepository {
	return &lostItemRepository{pool: pool}
}

const lostItemColumns = `id, title, description, image_url, location, status, posted_by`

func (r *lostItemRepository) Create(ctx context.Context, item *domain.LostItem) error {
	const query = `
        INSERT INTO lost_items (title, description, image_url, location, status, posted_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		item.Title,
		item.Description,
		item.ImageURL,
		item.Location,
		item.Status,
		item.PostedBy,
	).Scan(&item.ID)
}

func (r *lostItemRepository) GetByID(ctx context.Context, id int64) (*domain.LostItem, error) {
	const query = `SELECT ` + lostItemColumns + ` FROM lost_items WHERE id=$1`

	var item domain.LostItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.ImageURL,
		&item.Location,
		&item.Status,
		&item.PostedBy,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *lostItemRepository) List(ctx context.Context) ([]domain.LostItem, error) {
	const query = `SELECT ` + lostItemColumns + ` FROM lost_items ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LostItem
	for rows.Next() {
		var item domain.LostItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.ImageURL,
			&item.Location,
			&item.Status,
			&item.PostedBy,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *lostItemRepository) UpdateStatus(ctx context.Context, id int64, status domain.LostItemStatus) error {
	const query = `UPDATE lost_items SET status=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}

func (r *lostItemRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM lost_items WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}
