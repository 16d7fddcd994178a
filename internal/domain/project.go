package domain

import (
	"context"
	"time"
)

const (
	ProjectStatusActive    = "active"
	ProjectStatusPaused    = "paused"
	ProjectStatusCompleted = "completed"
)

type Project struct {
	ID           int64     `json:"id"`
	ContractorID *int64    `json:"contractorId"`
	Name         string    `json:"name" binding:"required,max=200"`
	Description  string    `json:"description" binding:"max=1000"`
	Location     string    `json:"location" binding:"max=200"`
	Status       string    `json:"status" binding:"omitempty,oneof=active paused completed"`
	Workers      int       `json:"workers" binding:"min=0"`
	Progress     int       `json:"progress" binding:"min=0,max=100"`
	Budget       float64   `json:"budget"`
	Spent        float64   `json:"spent"`
	Deadline     *string   `json:"deadline" binding:"omitempty,datetime=2006-01-02"` // YYYY-MM-DD
	Skills       string    `json:"skills" binding:"max=500"`                         // comma separated
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	Fetch(ctx context.Context) ([]Project, error)
	// FetchByContractor lists a contractor's projects; empty status means any.
	FetchByContractor(ctx context.Context, contractorID int64, status string) ([]Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int64) error
}

type ProjectUsecase interface {
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id int64) (*Project, error)
	ListProjects(ctx context.Context) ([]Project, error)
	ListProjectsByContractor(ctx context.Context, contractorID int64, status string) ([]Project, error)
	UpdateProject(ctx context.Context, id int64, project *Project) (*Project, error)
	DeleteProject(ctx context.Context, id int64) error
}
