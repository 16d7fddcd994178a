package domain

import (
	"context"
	"time"
)

// Application Status constants
const (
	ApplicationStatusPending  = "PENDING"
	ApplicationStatusAccepted = "ACCEPTED"
	ApplicationStatusRejected = "REJECTED"
)

// ValidApplicationStatuses lists all valid application statuses
var ValidApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// IsValidApplicationStatus checks if a status string is valid
func IsValidApplicationStatus(status string) bool {
	for _, s := range ValidApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Application links one job and one worker. The job and worker are
// referenced by id; JobTitle and WorkerName are read-side display fields.
type Application struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"jobId"`
	WorkerID      int64     `json:"workerId"`
	Status        string    `json:"status"`
	CoverNote     *string   `json:"coverNote"`
	ProposedRate  *float64  `json:"proposedRate"`
	AvailableFrom *string   `json:"availableFrom"`
	AppliedAt     time.Time `json:"appliedAt"`

	JobTitle   string `json:"jobTitle,omitempty"`
	WorkerName string `json:"workerName,omitempty"`
}

// ApplicationRequest is what a worker submits when applying to a job
type ApplicationRequest struct {
	WorkerID      int64    `json:"workerId" binding:"required,gt=0"`
	CoverNote     *string  `json:"coverNote" binding:"omitempty,max=2000"`
	ProposedRate  *float64 `json:"proposedRate"`
	AvailableFrom *string  `json:"availableFrom" binding:"omitempty,max=50"`
}

// ExportFile is a rendered download
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByWorkerID(ctx context.Context, workerID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	ApplyForJob(ctx context.Context, jobID int64, req ApplicationRequest) (*Application, error)
	GetApplicationsForJob(ctx context.Context, jobID int64) ([]Application, error)
	GetApplicationsByWorker(ctx context.Context, workerID int64) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status string) (*Application, error)
	ExportApplications(ctx context.Context, jobID int64, format string) (*ExportFile, error)
}
