package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/metro-service/internal/domain"
)

// MedicalHelpRepository encapsulates medical assistance requests and their
// solutions. Requests may be anonymous, so these reads are not owner-scoped.
type MedicalHelpRepository interface {
	Create(ctx context.Context, help *domain.MedicalHelp) error
	GetByID(ctx context.Context, id int64) (*domain.MedicalHelp, error)
	List(ctx context.Context) ([]domain.MedicalHelp, error)
	Delete(ctx context.Context, id int64) error
	AddSolution(ctx context.Context, solution *domain.MedicalHelpSolution) error
	ListSolutions(ctx context.Context, medicalHelpID int64) ([]domain.MedicalHelpSolution, error)
}

type medicalHelpRepository struct {
	pool *pgxpool.Pool
}

// NewMedicalHelpRepository instantiates repository.
func NewMedicalHelpRepository(pool *pgxpool.Pool) MedicalHelpRepository {
	return &medicalHelpRepository{pool: pool}
}

const medicalHelpColumns = `id, user_id, problem, description, created_at`

func (r *medicalHelpRepository) Create(ctx context.Context, help *domain.MedicalHelp) error {
	const query = `
        INSERT INTO medical_helps (user_id, problem, description)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		help.UserID,
		help.Problem,
		help.Description,
	).Scan(&help.ID, &help.CreatedAt)
}

func (r *medicalHelpRepository) GetByID(ctx context.Context, id int64) (*domain.MedicalHelp, error) {
	const query = `SELECT ` + medicalHelpColumns + ` FROM medical_helps WHERE id=$1`

	var help domain.MedicalHelp
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&help.ID,
		&help.UserID,
		&help.Problem,
		&help.Description,
		&help.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &help, nil
}

func (r *medicalHelpRepository) List(ctx context.Context) ([]domain.MedicalHelp, error) {
	const query = `SELECT ` + medicalHelpColumns + ` FROM medical_helps ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MedicalHelp
	for rows.Next() {
		var help domain.MedicalHelp
		if err := rows.Scan(
			&help.ID,
			&help.UserID,
			&help.Problem,
			&help.Description,
			&help.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, help)
	}
	return result, rows.Err()
}

func (r *medicalHelpRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM medical_helps WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected(), nil)
}

func (r *medicalHelpRepository) AddSolution(ctx context.Context, solution *domain.MedicalHelpSolution) error {
	const query = `
        INSERT INTO medical_help_solutions (medical_help_id, user_id, solution)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		solution.MedicalHelpID,
		solution.UserID,
		solution.Solution,
	).Scan(&solution.ID, &solution.CreatedAt)
}

func (r *medicalHelpRepository) ListSolutions(ctx context.Context, medicalHelpID int64) ([]domain.MedicalHelpSolution, error) {
	const query = `
        SELECT id, medical_help_id, user_id, solution, created_at
        FROM medical_help_solutions
        WHERE medical_help_id=$1
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, medicalHelpID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MedicalHelpSolution
	for rows.Next() {
		var solution domain.MedicalHelpSolution
		if err := rows.Scan(
			&solution.ID,
			&solution.MedicalHelpID,
			&solution.UserID,
			&solution.Solution,
			&solution.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, solution)
	}
	return result, rows.Err()
}
