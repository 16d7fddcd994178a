package usecase

import (
	"context"
	"fmt"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type projectUsecase struct {
	projectRepo    domain.ProjectRepository
	contractorRepo domain.ContractorRepository
}

func NewProjectUsecase(projectRepo domain.ProjectRepository, contractorRepo domain.ContractorRepository) domain.ProjectUsecase {
	return &projectUsecase{projectRepo: projectRepo, contractorRepo: contractorRepo}
}

func validateProject(p *domain.Project) error {
	switch p.Status {
	case "":
		p.Status = domain.ProjectStatusActive
	case domain.ProjectStatusActive, domain.ProjectStatusPaused, domain.ProjectStatusCompleted:
	default:
		return apperror.BadRequest(fmt.Sprintf("Invalid project status: %s", p.Status))
	}
	if p.Progress < 0 || p.Progress > 100 {
		return apperror.BadRequest("Progress must be between 0 and 100")
	}
	return nil
}

func (uc *projectUsecase) ensureContractor(ctx context.Context, contractorID *int64) error {
	if contractorID == nil {
		return nil
	}
	_, err := uc.contractorRepo.GetByID(ctx, *contractorID)
	return translate(err, "Contractor not found", "")
}

func (uc *projectUsecase) CreateProject(ctx context.Context, p *domain.Project) error {
	if err := validateProject(p); err != nil {
		return err
	}
	if err := uc.ensureContractor(ctx, p.ContractorID); err != nil {
		return err
	}
	return translate(uc.projectRepo.Create(ctx, p), "Contractor not found", "")
}

func (uc *projectUsecase) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Project not found", "")
	}
	return p, nil
}

func (uc *projectUsecase) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := uc.projectRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return projects, nil
}

// ListProjectsByContractor lists a contractor's projects, optionally by status
func (uc *projectUsecase) ListProjectsByContractor(ctx context.Context, contractorID int64, status string) ([]domain.Project, error) {
	projects, err := uc.projectRepo.FetchByContractor(ctx, contractorID, status)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return projects, nil
}

// UpdateProject replaces every mutable field of project id
func (uc *projectUsecase) UpdateProject(ctx context.Context, id int64, p *domain.Project) (*domain.Project, error) {
	if _, err := uc.GetProject(ctx, id); err != nil {
		return nil, err
	}
	if err := validateProject(p); err != nil {
		return nil, err
	}
	if err := uc.ensureContractor(ctx, p.ContractorID); err != nil {
		return nil, err
	}

	p.ID = id
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, translate(err, "Project not found", "")
	}
	return p, nil
}

func (uc *projectUsecase) DeleteProject(ctx context.Context, id int64) error {
	return translate(uc.projectRepo.Delete(ctx, id), "Project not found", "")
}
