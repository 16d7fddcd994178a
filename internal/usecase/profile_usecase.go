package usecase

import (
	"context"
	"errors"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type profileUsecase struct {
	userRepo       domain.UserRepository
	workerRepo     domain.WorkerRepository
	contractorRepo domain.ContractorRepository
	profileRepo    domain.ProfileRepository
}

// NewProfileUsecase creates the profile merge service keyed by user email
func NewProfileUsecase(
	userRepo domain.UserRepository,
	workerRepo domain.WorkerRepository,
	contractorRepo domain.ContractorRepository,
	profileRepo domain.ProfileRepository,
) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo:       userRepo,
		workerRepo:     workerRepo,
		contractorRepo: contractorRepo,
		profileRepo:    profileRepo,
	}
}

func (uc *profileUsecase) userByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, translate(err, "User not found", "")
	}
	return user, nil
}

// worker returns the user's worker record, or nil when there is none
func (uc *profileUsecase) worker(ctx context.Context, userID int64) (*domain.Worker, error) {
	w, err := uc.workerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return w, nil
}

func (uc *profileUsecase) contractor(ctx context.Context, userID int64) (*domain.Contractor, error) {
	c, err := uc.contractorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return c, nil
}

func (uc *profileUsecase) GetWorkerProfile(ctx context.Context, email string) (*domain.WorkerProfile, error) {
	user, err := uc.userByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	w, err := uc.worker(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return domain.NewWorkerProfile(user, w), nil
}

// UpdateWorkerProfile applies present fields to the user and worker records,
// creating the worker record on first update. Both rows commit together.
func (uc *profileUsecase) UpdateWorkerProfile(ctx context.Context, email string, patch domain.WorkerProfilePatch) (*domain.WorkerProfile, error) {
	if patch.ClearsRequired() {
		return nil, apperror.BadRequest("Name and email cannot be cleared")
	}

	user, err := uc.userByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	w, err := uc.worker(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = &domain.Worker{UserID: user.ID, Skills: []string{}, Certifications: []string{}}
	}

	patch.UserPatch.ApplyTo(user)
	patch.WorkerPatch.ApplyTo(w)

	if err := uc.profileRepo.SaveWorkerProfile(ctx, user, w); err != nil {
		return nil, translate(err, "User not found", "A user with this email already exists")
	}
	return domain.NewWorkerProfile(user, w), nil
}

func (uc *profileUsecase) GetContractorProfile(ctx context.Context, email string) (*domain.ContractorProfile, error) {
	user, err := uc.userByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	c, err := uc.contractor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return domain.NewContractorProfile(user, c), nil
}

// UpdateContractorProfile is the contractor counterpart of UpdateWorkerProfile
func (uc *profileUsecase) UpdateContractorProfile(ctx context.Context, email string, patch domain.ContractorProfilePatch) (*domain.ContractorProfile, error) {
	if patch.ClearsRequired() {
		return nil, apperror.BadRequest("Name and email cannot be cleared")
	}

	user, err := uc.userByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	c, err := uc.contractor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		userID := user.ID
		c = &domain.Contractor{UserID: &userID}
	}

	patch.UserPatch.ApplyTo(user)
	patch.ContractorPatch.ApplyTo(c)

	if err := uc.profileRepo.SaveContractorProfile(ctx, user, c); err != nil {
		return nil, translate(err, "User not found", "A user with this email already exists")
	}
	return domain.NewContractorProfile(user, c), nil
}
