package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/email"
	"go-marketplace-backend/pkg/logger"
)

// ApplicationNotifier tells a contractor that a worker applied
type ApplicationNotifier interface {
	IsConfigured() bool
	SendApplicationReceived(data email.ApplicationEmailData) error
}

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	workerRepo      domain.WorkerRepository
	contractorRepo  domain.ContractorRepository
	userRepo        domain.UserRepository
	notifier        ApplicationNotifier
}

// NewApplicationUsecase creates a new application usecase. notifier may be nil.
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	workerRepo domain.WorkerRepository,
	contractorRepo domain.ContractorRepository,
	userRepo domain.UserRepository,
	notifier ApplicationNotifier,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		workerRepo:      workerRepo,
		contractorRepo:  contractorRepo,
		userRepo:        userRepo,
		notifier:        notifier,
	}
}

const duplicateApplication = "Worker has already applied to this job"

// ApplyForJob records a worker's application. A worker applies to a job once.
func (uc *applicationUsecase) ApplyForJob(ctx context.Context, jobID int64, req domain.ApplicationRequest) (*domain.Application, error) {
	// 1. Job and worker must exist
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, translate(err, "Job not found", "")
	}
	worker, err := uc.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return nil, translate(err, "Worker not found", "")
	}

	// 2. Check for duplicate application
	existing, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for _, a := range existing {
		if a.WorkerID == worker.ID {
			return nil, apperror.Conflict(duplicateApplication)
		}
	}

	// 3. Create application; the (job, worker) index catches a concurrent twin
	app := &domain.Application{
		JobID:         job.ID,
		WorkerID:      worker.ID,
		Status:        domain.ApplicationStatusPending,
		CoverNote:     req.CoverNote,
		ProposedRate:  req.ProposedRate,
		AvailableFrom: req.AvailableFrom,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, translate(err, "Job not found", duplicateApplication)
	}
	app.JobTitle = job.Title

	uc.notifyContractor(job, worker, app)

	return app, nil
}

// notifyContractor emails the job's contractor in the background. Failures
// are logged and never reach the caller.
func (uc *applicationUsecase) notifyContractor(job *domain.Job, worker *domain.Worker, app *domain.Application) {
	if uc.notifier == nil || !uc.notifier.IsConfigured() || job.ContractorID == nil {
		return
	}

	go func() {
		ctx := context.Background()
		log := logger.Log.With("job_id", job.ID, "application_id", app.ID)

		contractor, err := uc.contractorRepo.GetByID(ctx, *job.ContractorID)
		if err != nil || contractor.UserID == nil {
			log.Warn("application notification skipped: contractor has no user", "error", err)
			return
		}
		owner, err := uc.userRepo.GetByID(ctx, *contractor.UserID)
		if err != nil {
			log.Warn("application notification skipped: contractor user lookup failed", "error", err)
			return
		}

		data := email.ApplicationEmailData{
			ContractorName:  owner.Name,
			ContractorEmail: owner.Email,
			JobTitle:        job.Title,
		}
		if wu, err := uc.userRepo.GetByID(ctx, worker.UserID); err == nil {
			data.WorkerName = wu.Name
		}
		if app.CoverNote != nil {
			data.CoverNote = *app.CoverNote
		}
		if app.ProposedRate != nil {
			data.ProposedRate = fmt.Sprintf("%.2f", *app.ProposedRate)
		}
		if app.AvailableFrom != nil {
			data.AvailableFrom = *app.AvailableFrom
		}

		if err := uc.notifier.SendApplicationReceived(data); err != nil {
			log.Error("application notification failed", "error", err)
		}
	}()
}

// GetApplicationsForJob returns all applications for a job
func (uc *applicationUsecase) GetApplicationsForJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, translate(err, "Job not found", "")
	}
	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// GetApplicationsByWorker returns all applications submitted by a worker
func (uc *applicationUsecase) GetApplicationsByWorker(ctx context.Context, workerID int64) ([]domain.Application, error) {
	if _, err := uc.workerRepo.GetByID(ctx, workerID); err != nil {
		return nil, translate(err, "Worker not found", "")
	}
	apps, err := uc.applicationRepo.GetByWorkerID(ctx, workerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application to PENDING, ACCEPTED or REJECTED
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !domain.IsValidApplicationStatus(status) {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(domain.ValidApplicationStatuses, ", ")))
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, translate(err, "Application not found", "")
	}

	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Application not found", "")
	}
	return app, nil
}
