package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/usecase"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type applicationFixture struct {
	apps        *MockApplicationRepo
	jobs        *MockJobRepo
	workers     *MockWorkerRepo
	contractors *MockContractorRepo
	users       *MockUserRepo
}

func newApplicationFixture() *applicationFixture {
	return &applicationFixture{
		apps:        new(MockApplicationRepo),
		jobs:        new(MockJobRepo),
		workers:     new(MockWorkerRepo),
		contractors: new(MockContractorRepo),
		users:       new(MockUserRepo),
	}
}

func (f *applicationFixture) usecase(notifier usecase.ApplicationNotifier) domain.ApplicationUsecase {
	return usecase.NewApplicationUsecase(f.apps, f.jobs, f.workers, f.contractors, f.users, notifier)
}

func TestApplyForJob(t *testing.T) {
	ctx := context.Background()
	job := &domain.Job{ID: 3, Title: "Plumber needed", PayRate: ptr(40.0), Status: domain.JobStatusOpen}
	worker := &domain.Worker{ID: 9, UserID: 4}

	t.Run("first application is pending, second one conflicts", func(t *testing.T) {
		f := newApplicationFixture()
		uc := f.usecase(nil)

		f.jobs.On("GetByID", ctx, int64(3)).Return(job, nil)
		f.workers.On("GetByID", ctx, int64(9)).Return(worker, nil)
		f.apps.On("GetByJobID", ctx, int64(3)).Return([]domain.Application{}, nil).Once()
		f.apps.On("Create", ctx, mock.AnythingOfType("*domain.Application")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Application).ID = 100
			}).
			Return(nil).Once()

		req := domain.ApplicationRequest{WorkerID: 9, CoverNote: ptr("Available now")}
		app, err := uc.ApplyForJob(ctx, 3, req)
		require.NoError(t, err)
		assert.Equal(t, int64(100), app.ID)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "Available now", *app.CoverNote)
		assert.Equal(t, "Plumber needed", app.JobTitle)

		f.apps.On("GetByJobID", ctx, int64(3)).Return([]domain.Application{*app}, nil).Once()
		_, err = uc.ApplyForJob(ctx, 3, req)
		assert.True(t, apperror.IsStatus(err, http.StatusConflict))
		f.apps.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("concurrent duplicate caught by the store", func(t *testing.T) {
		f := newApplicationFixture()
		uc := f.usecase(nil)

		f.jobs.On("GetByID", ctx, int64(3)).Return(job, nil)
		f.workers.On("GetByID", ctx, int64(9)).Return(worker, nil)
		f.apps.On("GetByJobID", ctx, int64(3)).Return([]domain.Application{}, nil)
		f.apps.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicate)

		_, err := uc.ApplyForJob(ctx, 3, domain.ApplicationRequest{WorkerID: 9})
		assert.True(t, apperror.IsStatus(err, http.StatusConflict))
	})

	t.Run("missing job or worker", func(t *testing.T) {
		f := newApplicationFixture()
		uc := f.usecase(nil)

		f.jobs.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)
		f.jobs.On("GetByID", ctx, int64(3)).Return(job, nil)
		f.workers.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := uc.ApplyForJob(ctx, 404, domain.ApplicationRequest{WorkerID: 9})
		assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
		assert.Contains(t, err.Error(), "Job")

		_, err = uc.ApplyForJob(ctx, 3, domain.ApplicationRequest{WorkerID: 404})
		assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
		assert.Contains(t, err.Error(), "Worker")
		f.apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("contractor is emailed in the background", func(t *testing.T) {
		f := newApplicationFixture()
		notifier := new(MockNotifier)
		uc := f.usecase(notifier)

		owned := &domain.Job{ID: 5, Title: "Roofer", ContractorID: ptr(int64(2))}
		f.jobs.On("GetByID", ctx, int64(5)).Return(owned, nil)
		f.workers.On("GetByID", ctx, int64(9)).Return(worker, nil)
		f.apps.On("GetByJobID", ctx, int64(5)).Return([]domain.Application{}, nil)
		f.apps.On("Create", ctx, mock.Anything).Return(nil)
		f.contractors.On("GetByID", mock.Anything, int64(2)).Return(&domain.Contractor{ID: 2, UserID: ptr(int64(7))}, nil)
		f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Name: "Acme Owner", Email: "owner@acme.test"}, nil)
		f.users.On("GetByID", mock.Anything, int64(4)).Return(&domain.User{ID: 4, Name: "Pat Worker"}, nil)

		sent := make(chan email.ApplicationEmailData, 1)
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendApplicationReceived", mock.Anything).
			Run(func(args mock.Arguments) { sent <- args.Get(0).(email.ApplicationEmailData) }).
			Return(nil)

		_, err := uc.ApplyForJob(ctx, 5, domain.ApplicationRequest{WorkerID: 9, ProposedRate: ptr(42.5)})
		require.NoError(t, err)

		select {
		case data := <-sent:
			assert.Equal(t, "owner@acme.test", data.ContractorEmail)
			assert.Equal(t, "Roofer", data.JobTitle)
			assert.Equal(t, "Pat Worker", data.WorkerName)
			assert.Equal(t, "42.50", data.ProposedRate)
		case <-time.After(2 * time.Second):
			t.Fatal("notification was not sent")
		}
	})

	t.Run("notification failure does not fail the application", func(t *testing.T) {
		f := newApplicationFixture()
		notifier := new(MockNotifier)
		uc := f.usecase(notifier)

		owned := &domain.Job{ID: 6, Title: "Painter", ContractorID: ptr(int64(2))}
		f.jobs.On("GetByID", ctx, int64(6)).Return(owned, nil)
		f.workers.On("GetByID", ctx, int64(9)).Return(worker, nil)
		f.apps.On("GetByJobID", ctx, int64(6)).Return([]domain.Application{}, nil)
		f.apps.On("Create", ctx, mock.Anything).Return(nil)
		f.contractors.On("GetByID", mock.Anything, int64(2)).Return(&domain.Contractor{ID: 2, UserID: ptr(int64(7))}, nil)
		f.users.On("GetByID", mock.Anything, mock.Anything).Return(&domain.User{ID: 7, Email: "owner@acme.test"}, nil)

		done := make(chan struct{})
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendApplicationReceived", mock.Anything).
			Run(func(mock.Arguments) { close(done) }).
			Return(errors.New("smtp down"))

		app, err := uc.ApplyForJob(ctx, 6, domain.ApplicationRequest{WorkerID: 9})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("notification was not attempted")
		}
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and applies a valid status", func(t *testing.T) {
		f := newApplicationFixture()
		uc := f.usecase(nil)

		f.apps.On("UpdateStatus", ctx, int64(1), domain.ApplicationStatusAccepted).Return(nil)
		f.apps.On("GetByID", ctx, int64(1)).Return(&domain.Application{ID: 1, Status: domain.ApplicationStatusAccepted}, nil)

		app, err := uc.UpdateApplicationStatus(ctx, 1, " accepted ")
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusAccepted, app.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		f := newApplicationFixture()
		uc := f.usecase(nil)

		_, err := uc.UpdateApplicationStatus(ctx, 1, "HIRED")
		assert.True(t, apperror.IsStatus(err, http.StatusBadRequest))
		f.apps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown application", func(t *testing.T) {
		f := newApplicationFixture()
		uc := f.usecase(nil)

		f.apps.On("UpdateStatus", ctx, int64(77), domain.ApplicationStatusRejected).Return(domain.ErrNotFound)
		_, err := uc.UpdateApplicationStatus(ctx, 77, "REJECTED")
		assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
	})
}

func TestApplicationListings(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture()
	uc := f.usecase(nil)

	f.jobs.On("GetByID", ctx, int64(3)).Return(&domain.Job{ID: 3}, nil)
	f.jobs.On("GetByID", ctx, int64(4)).Return(nil, domain.ErrNotFound)
	f.apps.On("GetByJobID", ctx, int64(3)).Return([]domain.Application{{ID: 1}, {ID: 2}}, nil)
	f.workers.On("GetByID", ctx, int64(9)).Return(&domain.Worker{ID: 9}, nil)
	f.apps.On("GetByWorkerID", ctx, int64(9)).Return([]domain.Application{{ID: 2, JobTitle: "Plumber needed"}}, nil)

	apps, err := uc.GetApplicationsForJob(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	_, err = uc.GetApplicationsForJob(ctx, 4)
	assert.True(t, apperror.IsStatus(err, http.StatusNotFound))

	apps, err = uc.GetApplicationsByWorker(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Plumber needed", apps[0].JobTitle)
}

func TestExportApplications(t *testing.T) {
	ctx := context.Background()
	applied := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	f := newApplicationFixture()
	uc := f.usecase(nil)
	f.jobs.On("GetByID", ctx, int64(3)).Return(&domain.Job{ID: 3}, nil)
	f.apps.On("GetByJobID", ctx, int64(3)).Return([]domain.Application{{
		ID:           1,
		WorkerID:     9,
		WorkerName:   "Pat Worker",
		Status:       domain.ApplicationStatusPending,
		CoverNote:    ptr("Available now"),
		ProposedRate: ptr(40.0),
		AppliedAt:    applied,
	}}, nil)

	t.Run("csv", func(t *testing.T) {
		file, err := uc.ExportApplications(ctx, 3, "csv")
		require.NoError(t, err)
		assert.Equal(t, "text/csv", file.ContentType)
		assert.True(t, strings.HasSuffix(file.Filename, ".csv"))

		lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "APPLICATION ID,"))
		assert.Equal(t, "1,9,Pat Worker,PENDING,40.00,,Available now,2026-03-01T09:30:00Z", lines[1])
	})

	t.Run("xlsx is the default", func(t *testing.T) {
		file, err := uc.ExportApplications(ctx, 3, "")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))

		book, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer book.Close()

		rows, err := book.GetRows("Applications")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "WORKER NAME", rows[0][2])
		assert.Equal(t, "Pat Worker", rows[1][2])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := uc.ExportApplications(ctx, 3, "pdf")
		assert.True(t, apperror.IsStatus(err, http.StatusBadRequest))
	})
}
