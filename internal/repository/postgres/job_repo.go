package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, contractor_id, title, location, pay_rate, duration, description, skills_required, status, required_workers, created_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID, &j.ContractorID, &j.Title, &j.Location, &j.PayRate, &j.Duration,
		&j.Description, &j.SkillsRequired, &j.Status, &j.RequiredWorkers, &j.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &j, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (contractor_id, title, location, pay_rate, duration, description, skills_required, status, required_workers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	job.CreatedAt = time.Now()
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}

	err := r.db.QueryRow(ctx, query,
		job.ContractorID, job.Title, job.Location, job.PayRate, job.Duration,
		job.Description, job.SkillsRequired, job.Status, job.RequiredWorkers, job.CreatedAt,
	).Scan(&job.ID)
	return mapError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	return scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
}

// Fetch lists jobs newest first, narrowed by the non-zero filter fields.
// Keyword filters are case-insensitive substring matches.
func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query, args := buildJobQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func buildJobQuery(filter domain.JobFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.Location != "" {
		add("location ILIKE $%d", "%"+filter.Location+"%")
	}
	if filter.Query != "" {
		add("title ILIKE $%d", "%"+filter.Query+"%")
	}
	if filter.Skill != "" {
		add("skills_required ILIKE $%d", "%"+filter.Skill+"%")
	}
	if filter.ContractorID != nil {
		add("contractor_id = $%d", *filter.ContractorID)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`
	return query, args
}

// Delete removes the job; its applications go with it.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	return expectOne(r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id))
}
