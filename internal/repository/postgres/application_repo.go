package postgres

import (
	"context"
	"time"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationSelect = `
	SELECT
		a.id, a.job_id, a.worker_id, a.status, a.cover_note, a.proposed_rate,
		a.available_from, a.applied_at,
		COALESCE(j.title, '') AS job_title,
		COALESCE(u.name, '') AS worker_name
	FROM applications a
	LEFT JOIN jobs j ON a.job_id = j.id
	LEFT JOIN workers w ON a.worker_id = w.id
	LEFT JOIN users u ON w.user_id = u.id`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	err := row.Scan(
		&app.ID, &app.JobID, &app.WorkerID, &app.Status, &app.CoverNote, &app.ProposedRate,
		&app.AvailableFrom, &app.AppliedAt, &app.JobTitle, &app.WorkerName,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &app, nil
}

// Create inserts a new application
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, worker_id, status, cover_note, proposed_rate, available_from, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	app.AppliedAt = time.Now()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.WorkerID, app.Status, app.CoverNote,
		app.ProposedRate, app.AvailableFrom, app.AppliedAt,
	).Scan(&app.ID)
	return mapError(err)
}

// GetByID retrieves an application with its job title and worker name
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	return scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
}

// GetByJobID retrieves all applications for a job, oldest first
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return r.list(ctx, applicationSelect+` WHERE a.job_id = $1 ORDER BY a.applied_at, a.id`, jobID)
}

// GetByWorkerID retrieves all applications submitted by a worker, newest first
func (r *applicationRepo) GetByWorkerID(ctx context.Context, workerID int64) ([]domain.Application, error) {
	return r.list(ctx, applicationSelect+` WHERE a.worker_id = $1 ORDER BY a.applied_at DESC, a.id DESC`, workerID)
}

func (r *applicationRepo) list(ctx context.Context, query string, arg int64) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

// UpdateStatus updates the status of an application
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return expectOne(r.db.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, status))
}
