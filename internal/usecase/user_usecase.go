package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/imaging"

	"github.com/google/uuid"
)

const (
	profilePhotoMaxDimension = 512
	profilePhotoQuality      = 82
)

// PhotoStore uploads an object and returns its public URL
type PhotoStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type userUsecase struct {
	userRepo domain.UserRepository
	photos   PhotoStore
}

// NewUserUsecase creates the user usecase. photos may be nil when object
// storage is not configured; uploads then fail with 503.
func NewUserUsecase(userRepo domain.UserRepository, photos PhotoStore) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, photos: photos}
}

func (uc *userUsecase) CreateUser(ctx context.Context, user *domain.User) error {
	err := uc.userRepo.Create(ctx, user)
	return translate(err, "", "A user with this email already exists")
}

func (uc *userUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "User not found", "")
	}
	return user, nil
}

func (uc *userUsecase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, translate(err, "User not found", "")
	}
	return user, nil
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

// UpdateUser merges the present fields of patch into the stored user
func (uc *userUsecase) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	if patch.ClearsRequired() {
		return nil, apperror.BadRequest("Name and email cannot be cleared")
	}

	user, err := uc.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(user)

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, translate(err, "User not found", "A user with this email already exists")
	}
	return user, nil
}

// UploadProfilePhoto shrinks the image, stores it and records its URL on the user
func (uc *userUsecase) UploadProfilePhoto(ctx context.Context, id int64, data []byte) (*domain.User, error) {
	if uc.photos == nil {
		return nil, apperror.Unavailable("Photo storage is not configured")
	}

	user, err := uc.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	compressed, err := imaging.CompressJPEG(data, profilePhotoMaxDimension, profilePhotoQuality)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedImage) {
			return nil, apperror.BadRequest("Photo must be a JPEG, PNG or WebP image")
		}
		return nil, apperror.BadRequest("Photo could not be processed")
	}

	key := fmt.Sprintf("profiles/%d/%s.jpg", id, uuid.NewString())
	url, err := uc.photos.Put(ctx, key, compressed, "image/jpeg")
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user.ProfilePhoto = &url
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, translate(err, "User not found", "")
	}
	return user, nil
}
