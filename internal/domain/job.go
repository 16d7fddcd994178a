package domain

import (
	"context"
	"time"
)

const (
	JobStatusOpen = "OPEN"
)

type Job struct {
	ID              int64     `json:"id"`
	ContractorID    *int64    `json:"contractorId"`
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	PayRate         *float64  `json:"payRate"`
	Duration        string    `json:"duration"`
	Description     string    `json:"description"`
	SkillsRequired  string    `json:"skillsRequired"`
	Status          string    `json:"status"`
	RequiredWorkers *int      `json:"requiredWorkers"`
	CreatedAt       time.Time `json:"createdAt"`
}

// JobFilter narrows a job listing. Zero fields do not filter.
type JobFilter struct {
	Status       string
	Location     string
	Query        string // title keyword
	Skill        string // required-skills keyword
	ContractorID *int64
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, filter JobFilter) ([]Job, error)
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	ListJobsByContractor(ctx context.Context, contractorID int64) ([]Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
