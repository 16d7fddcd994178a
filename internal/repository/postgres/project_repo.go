package postgres

import (
	"context"
	"time"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, contractor_id, name, description, location, status, workers, progress,
	budget, spent, to_char(deadline, 'YYYY-MM-DD'), skills, created_at, updated_at`

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.ContractorID, &p.Name, &p.Description, &p.Location, &p.Status, &p.Workers,
		&p.Progress, &p.Budget, &p.Spent, &p.Deadline, &p.Skills, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (contractor_id, name, description, location, status, workers, progress,
		                      budget, spent, deadline, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::date, $11, $12, $12)
		RETURNING id`

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectStatusActive
	}

	err := r.db.QueryRow(ctx, query,
		p.ContractorID, p.Name, p.Description, p.Location, p.Status, p.Workers, p.Progress,
		p.Budget, p.Spent, p.Deadline, p.Skills, now,
	).Scan(&p.ID)
	return mapError(err)
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
}

func (r *projectRepo) Fetch(ctx context.Context) ([]domain.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
}

func (r *projectRepo) FetchByContractor(ctx context.Context, contractorID int64, status string) ([]domain.Project, error) {
	if status == "" {
		return r.list(ctx, `SELECT `+projectColumns+` FROM projects WHERE contractor_id = $1 ORDER BY id`, contractorID)
	}
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects WHERE contractor_id = $1 AND status = $2 ORDER BY id`, contractorID, status)
}

func (r *projectRepo) list(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// Update overwrites every mutable column and refreshes updated_at.
func (r *projectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `
		UPDATE projects
		SET contractor_id = $2, name = $3, description = $4, location = $5, status = $6,
		    workers = $7, progress = $8, budget = $9, spent = $10, deadline = $11::date,
		    skills = $12, updated_at = $13
		WHERE id = $1
		RETURNING created_at`

	p.UpdatedAt = time.Now()
	err := r.db.QueryRow(ctx, query,
		p.ID, p.ContractorID, p.Name, p.Description, p.Location, p.Status,
		p.Workers, p.Progress, p.Budget, p.Spent, p.Deadline, p.Skills, p.UpdatedAt,
	).Scan(&p.CreatedAt)
	return mapError(err)
}

func (r *projectRepo) Delete(ctx context.Context, id int64) error {
	return expectOne(r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id))
}
