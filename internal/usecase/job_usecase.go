package usecase

import (
	"context"
	"strings"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo        domain.JobRepository
	contractorRepo domain.ContractorRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, contractorRepo domain.ContractorRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, contractorRepo: contractorRepo}
}

// CreateJob stores a posting. Numeric fields are taken as given.
func (uc *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	if job.ContractorID != nil {
		if _, err := uc.contractorRepo.GetByID(ctx, *job.ContractorID); err != nil {
			return translate(err, "Contractor not found", "")
		}
	}
	job.Status = strings.ToUpper(strings.TrimSpace(job.Status))
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	return translate(uc.jobRepo.Create(ctx, job), "Contractor not found", "")
}

func (uc *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Job not found", "")
	}
	return job, nil
}

func (uc *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))
	jobs, err := uc.jobRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (uc *jobUsecase) ListJobsByContractor(ctx context.Context, contractorID int64) ([]domain.Job, error) {
	return uc.ListJobs(ctx, domain.JobFilter{ContractorID: &contractorID})
}

// DeleteJob removes a job together with all of its applications,
// whatever their status.
func (uc *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	return translate(uc.jobRepo.Delete(ctx, id), "Job not found", "")
}
