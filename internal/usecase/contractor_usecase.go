package usecase

import (
	"context"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type contractorUsecase struct {
	contractorRepo domain.ContractorRepository
	userRepo       domain.UserRepository
}

func NewContractorUsecase(contractorRepo domain.ContractorRepository, userRepo domain.UserRepository) domain.ContractorUsecase {
	return &contractorUsecase{contractorRepo: contractorRepo, userRepo: userRepo}
}

// CreateContractor stores a contractor. A linked user must exist and may own
// only one contractor record.
func (uc *contractorUsecase) CreateContractor(ctx context.Context, c *domain.Contractor) error {
	if c.UserID != nil {
		if _, err := uc.userRepo.GetByID(ctx, *c.UserID); err != nil {
			return translate(err, "User not found", "")
		}
	}
	err := uc.contractorRepo.Create(ctx, c)
	return translate(err, "User not found", "User is already registered as a contractor")
}

func (uc *contractorUsecase) GetContractor(ctx context.Context, id int64) (*domain.Contractor, error) {
	c, err := uc.contractorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Contractor not found", "")
	}
	return c, nil
}

func (uc *contractorUsecase) GetContractorByUserID(ctx context.Context, userID int64) (*domain.Contractor, error) {
	c, err := uc.contractorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err, "Contractor not found", "")
	}
	return c, nil
}

func (uc *contractorUsecase) ListContractors(ctx context.Context) ([]domain.Contractor, error) {
	contractors, err := uc.contractorRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return contractors, nil
}

func (uc *contractorUsecase) UpdateContractor(ctx context.Context, id int64, patch domain.ContractorPatch) (*domain.Contractor, error) {
	c, err := uc.GetContractor(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(c)

	if err := uc.contractorRepo.Update(ctx, c); err != nil {
		return nil, translate(err, "Contractor not found", "")
	}
	return c, nil
}

func (uc *contractorUsecase) DeleteContractor(ctx context.Context, id int64) error {
	return translate(uc.contractorRepo.Delete(ctx, id), "Contractor not found", "")
}
