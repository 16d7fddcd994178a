package postgres

import (
	"context"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const workerColumns = `id, user_id, skills, experience, hourly_rate, availability, certifications`

type workerRepo struct {
	db *pgxpool.Pool
}

func NewWorkerRepository(db *pgxpool.Pool) domain.WorkerRepository {
	return &workerRepo{db: db}
}

func scanWorker(row pgx.Row) (*domain.Worker, error) {
	var w domain.Worker
	err := row.Scan(
		&w.ID, &w.UserID, pq.Array(&w.Skills), &w.Experience,
		&w.HourlyRate, &w.Availability, pq.Array(&w.Certifications),
	)
	if err != nil {
		return nil, mapError(err)
	}
	if w.Skills == nil {
		w.Skills = []string{}
	}
	if w.Certifications == nil {
		w.Certifications = []string{}
	}
	return &w, nil
}

func (r *workerRepo) Create(ctx context.Context, w *domain.Worker) error {
	query := `
		INSERT INTO workers (user_id, skills, experience, hourly_rate, availability, certifications)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		w.UserID, pq.Array(nonNil(w.Skills)), w.Experience,
		w.HourlyRate, w.Availability, pq.Array(nonNil(w.Certifications)),
	).Scan(&w.ID)
	return mapError(err)
}

func (r *workerRepo) GetByID(ctx context.Context, id int64) (*domain.Worker, error) {
	return scanWorker(r.db.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE id = $1`, id))
}

func (r *workerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Worker, error) {
	return scanWorker(r.db.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE user_id = $1`, userID))
}

func (r *workerRepo) List(ctx context.Context) ([]domain.Worker, error) {
	rows, err := r.db.Query(ctx, `SELECT `+workerColumns+` FROM workers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workers := []domain.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, *w)
	}
	return workers, rows.Err()
}

func (r *workerRepo) Update(ctx context.Context, w *domain.Worker) error {
	return expectOne(r.db.Exec(ctx, updateWorkerQuery, workerUpdateArgs(w)...))
}

func (r *workerRepo) Delete(ctx context.Context, id int64) error {
	return expectOne(r.db.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id))
}

const updateWorkerQuery = `
	UPDATE workers
	SET skills = $2, experience = $3, hourly_rate = $4, availability = $5, certifications = $6
	WHERE id = $1`

func workerUpdateArgs(w *domain.Worker) []any {
	return []any{w.ID, pq.Array(nonNil(w.Skills)), w.Experience, w.HourlyRate, w.Availability, pq.Array(nonNil(w.Certifications))}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
