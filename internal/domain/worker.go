package domain

import (
	"context"

	"go-marketplace-backend/pkg/optional"
)

// Worker extends a user with marketplace attributes. At most one per user.
type Worker struct {
	ID             int64    `json:"id"`
	UserID         int64    `json:"userId"`
	Skills         []string `json:"skills"`
	Experience     *int     `json:"experience"`
	HourlyRate     *float64 `json:"hourlyRate"`
	Availability   *string  `json:"availability"`
	Certifications []string `json:"certifications"`
}

// WorkerPatch carries a partial update of worker attributes.
type WorkerPatch struct {
	Skills         optional.Value[[]string] `json:"skills" binding:"omitempty,skill_list"`
	Experience     optional.Value[int]      `json:"experience" binding:"omitempty,min=0,max=80"`
	HourlyRate     optional.Value[float64]  `json:"hourlyRate" binding:"omitempty,min=0"`
	Availability   optional.Value[string]   `json:"availability" binding:"omitempty,max=200"`
	Certifications optional.Value[[]string] `json:"certifications" binding:"omitempty,skill_list"`
}

// ApplyTo merges present fields into w. A null list becomes empty.
func (p WorkerPatch) ApplyTo(w *Worker) {
	if p.Skills.Apply(&w.Skills) && w.Skills == nil {
		w.Skills = []string{}
	}
	p.Experience.ApplyPtr(&w.Experience)
	p.HourlyRate.ApplyPtr(&w.HourlyRate)
	p.Availability.ApplyPtr(&w.Availability)
	if p.Certifications.Apply(&w.Certifications) && w.Certifications == nil {
		w.Certifications = []string{}
	}
}

type WorkerRepository interface {
	Create(ctx context.Context, worker *Worker) error
	GetByID(ctx context.Context, id int64) (*Worker, error)
	GetByUserID(ctx context.Context, userID int64) (*Worker, error)
	List(ctx context.Context) ([]Worker, error)
	Update(ctx context.Context, worker *Worker) error
	Delete(ctx context.Context, id int64) error
}

type WorkerUsecase interface {
	CreateWorker(ctx context.Context, worker *Worker) error
	GetWorker(ctx context.Context, id int64) (*Worker, error)
	GetWorkerByUserID(ctx context.Context, userID int64) (*Worker, error)
	ListWorkers(ctx context.Context) ([]Worker, error)
	UpdateWorker(ctx context.Context, id int64, patch WorkerPatch) (*Worker, error)
	DeleteWorker(ctx context.Context, id int64) error
}
