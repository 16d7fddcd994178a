package usecase_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"regexp"
	"testing"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/usecase"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepo)
	uc := usecase.NewUserUsecase(users, nil)

	users.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicate)

	err := uc.CreateUser(ctx, &domain.User{Name: "Pat", Email: "pat@example.com"})
	assert.True(t, apperror.IsStatus(err, http.StatusConflict))
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewUserUsecase(users, nil)

		stored := &domain.User{ID: 1, Name: "Pat", Email: "pat@example.com", Bio: ptr("old"), Location: ptr("Austin")}
		users.On("GetByID", ctx, int64(1)).Return(stored, nil)
		users.On("Update", ctx, mock.Anything).Return(nil)

		user, err := uc.UpdateUser(ctx, 1, domain.UserPatch{Bio: optional.Of("new bio"), Location: optional.Null[string]()})
		require.NoError(t, err)
		assert.Equal(t, "new bio", *user.Bio)
		assert.Nil(t, user.Location)
		assert.Equal(t, "Pat", user.Name)
	})

	t.Run("email cannot be cleared", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewUserUsecase(users, nil)

		_, err := uc.UpdateUser(ctx, 1, domain.UserPatch{Email: optional.Null[string]()})
		assert.True(t, apperror.IsStatus(err, http.StatusBadRequest))
		users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewUserUsecase(users, nil)
		users.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateUser(ctx, 99, domain.UserPatch{Bio: optional.Of("x")})
		assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
	})
}

func TestUploadProfilePhoto(t *testing.T) {
	ctx := context.Background()

	img := image.NewRGBA(image.Rect(0, 0, 1024, 512))
	for x := 0; x < 1024; x++ {
		img.Set(x, x%512, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	t.Run("stores a jpeg and records its url", func(t *testing.T) {
		users := new(MockUserRepo)
		photos := new(MockPhotoStore)
		uc := usecase.NewUserUsecase(users, photos)

		users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Pat"}, nil)
		users.On("Update", ctx, mock.Anything).Return(nil)
		keyPattern := regexp.MustCompile(`^profiles/1/[0-9a-f-]{36}\.jpg$`)
		photos.On("Put", ctx, mock.MatchedBy(keyPattern.MatchString), mock.Anything, "image/jpeg").
			Return("https://cdn.example/profiles/1/p.jpg", nil)

		user, err := uc.UploadProfilePhoto(ctx, 1, buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/profiles/1/p.jpg", *user.ProfilePhoto)

		stored := photos.Calls[0].Arguments.Get(2).([]byte)
		cfg, format, err := image.DecodeConfig(bytes.NewReader(stored))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 512, cfg.Width)
		assert.Equal(t, 256, cfg.Height)
	})

	t.Run("not an image", func(t *testing.T) {
		users := new(MockUserRepo)
		photos := new(MockPhotoStore)
		uc := usecase.NewUserUsecase(users, photos)
		users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)

		_, err := uc.UploadProfilePhoto(ctx, 1, []byte("plain text"))
		assert.True(t, apperror.IsStatus(err, http.StatusBadRequest))
		photos.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage not configured", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), nil)
		_, err := uc.UploadProfilePhoto(ctx, 1, buf.Bytes())
		assert.True(t, apperror.IsStatus(err, http.StatusServiceUnavailable))
	})
}

func TestWorkerUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("one worker per user", func(t *testing.T) {
		workers := new(MockWorkerRepo)
		users := new(MockUserRepo)
		uc := usecase.NewWorkerUsecase(workers, users)

		users.On("GetByID", ctx, int64(4)).Return(&domain.User{ID: 4}, nil)
		workers.On("Create", ctx, mock.Anything).Return(nil).Once()
		workers.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicate).Once()

		w := &domain.Worker{UserID: 4}
		require.NoError(t, uc.CreateWorker(ctx, w))
		assert.Equal(t, []string{}, w.Skills)
		assert.Equal(t, []string{}, w.Certifications)

		err := uc.CreateWorker(ctx, &domain.Worker{UserID: 4})
		assert.True(t, apperror.IsStatus(err, http.StatusConflict))
	})

	t.Run("unknown user", func(t *testing.T) {
		workers := new(MockWorkerRepo)
		users := new(MockUserRepo)
		uc := usecase.NewWorkerUsecase(workers, users)
		users.On("GetByID", ctx, int64(5)).Return(nil, domain.ErrNotFound)

		err := uc.CreateWorker(ctx, &domain.Worker{UserID: 5})
		assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
	})

	t.Run("patch keeps absent fields and empties null lists", func(t *testing.T) {
		workers := new(MockWorkerRepo)
		uc := usecase.NewWorkerUsecase(workers, new(MockUserRepo))

		workers.On("GetByID", ctx, int64(9)).Return(&domain.Worker{
			ID: 9, UserID: 4, Skills: []string{"plumbing"}, Certifications: []string{"OSHA 10"}, HourlyRate: ptr(30.0),
		}, nil)
		workers.On("Update", ctx, mock.Anything).Return(nil)

		w, err := uc.UpdateWorker(ctx, 9, domain.WorkerPatch{
			HourlyRate:     optional.Of(45.0),
			Certifications: optional.Null[[]string](),
		})
		require.NoError(t, err)
		assert.Equal(t, 45.0, *w.HourlyRate)
		assert.Equal(t, []string{"plumbing"}, w.Skills)
		assert.Equal(t, []string{}, w.Certifications)
	})

	t.Run("delete unknown worker", func(t *testing.T) {
		workers := new(MockWorkerRepo)
		uc := usecase.NewWorkerUsecase(workers, new(MockUserRepo))
		workers.On("Delete", ctx, int64(9)).Return(domain.ErrNotFound)

		assert.True(t, apperror.IsStatus(uc.DeleteWorker(ctx, 9), http.StatusNotFound))
	})
}

func TestContractorUsecase(t *testing.T) {
	ctx := context.Background()
	contractors := new(MockContractorRepo)
	uc := usecase.NewContractorUsecase(contractors, new(MockUserRepo))

	contractors.On("GetByID", ctx, int64(2)).Return(&domain.Contractor{
		ID: 2, CompanyName: ptr("Acme"), Website: ptr("https://acme.test"),
	}, nil)
	contractors.On("Update", ctx, mock.Anything).Return(nil)

	c, err := uc.UpdateContractor(ctx, 2, domain.ContractorPatch{YearsInBusiness: optional.Of(12)})
	require.NoError(t, err)
	assert.Equal(t, 12, *c.YearsInBusiness)
	assert.Equal(t, "Acme", *c.CompanyName)
	assert.Equal(t, "https://acme.test", *c.Website)
}
