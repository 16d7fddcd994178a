package usecase

import (
	"context"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type workerUsecase struct {
	workerRepo domain.WorkerRepository
	userRepo   domain.UserRepository
}

func NewWorkerUsecase(workerRepo domain.WorkerRepository, userRepo domain.UserRepository) domain.WorkerUsecase {
	return &workerUsecase{workerRepo: workerRepo, userRepo: userRepo}
}

// CreateWorker registers the owning user as a worker. One worker per user.
func (uc *workerUsecase) CreateWorker(ctx context.Context, w *domain.Worker) error {
	if _, err := uc.userRepo.GetByID(ctx, w.UserID); err != nil {
		return translate(err, "User not found", "")
	}
	if w.Skills == nil {
		w.Skills = []string{}
	}
	if w.Certifications == nil {
		w.Certifications = []string{}
	}
	err := uc.workerRepo.Create(ctx, w)
	return translate(err, "User not found", "User is already registered as a worker")
}

func (uc *workerUsecase) GetWorker(ctx context.Context, id int64) (*domain.Worker, error) {
	w, err := uc.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Worker not found", "")
	}
	return w, nil
}

func (uc *workerUsecase) GetWorkerByUserID(ctx context.Context, userID int64) (*domain.Worker, error) {
	w, err := uc.workerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err, "Worker not found", "")
	}
	return w, nil
}

func (uc *workerUsecase) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	workers, err := uc.workerRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return workers, nil
}

func (uc *workerUsecase) UpdateWorker(ctx context.Context, id int64, patch domain.WorkerPatch) (*domain.Worker, error) {
	w, err := uc.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(w)

	if err := uc.workerRepo.Update(ctx, w); err != nil {
		return nil, translate(err, "Worker not found", "")
	}
	return w, nil
}

func (uc *workerUsecase) DeleteWorker(ctx context.Context, id int64) error {
	return translate(uc.workerRepo.Delete(ctx, id), "Worker not found", "")
}
