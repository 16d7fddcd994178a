package v1

import (
	"context"

	"go-marketplace-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockJobUC struct{ mock.Mock }

func (m *mockJobUC) CreateJob(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *mockJobUC) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}
func (m *mockJobUC) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, args.Error(1)
}
func (m *mockJobUC) ListJobsByContractor(ctx context.Context, contractorID int64) ([]domain.Job, error) {
	args := m.Called(ctx, contractorID)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, args.Error(1)
}
func (m *mockJobUC) DeleteJob(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockApplicationUC struct{ mock.Mock }

func (m *mockApplicationUC) ApplyForJob(ctx context.Context, jobID int64, req domain.ApplicationRequest) (*domain.Application, error) {
	args := m.Called(ctx, jobID, req)
	app, _ := args.Get(0).(*domain.Application)
	return app, args.Error(1)
}
func (m *mockApplicationUC) GetApplicationsForJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	apps, _ := args.Get(0).([]domain.Application)
	return apps, args.Error(1)
}
func (m *mockApplicationUC) GetApplicationsByWorker(ctx context.Context, workerID int64) ([]domain.Application, error) {
	args := m.Called(ctx, workerID)
	apps, _ := args.Get(0).([]domain.Application)
	return apps, args.Error(1)
}
func (m *mockApplicationUC) UpdateApplicationStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	args := m.Called(ctx, id, status)
	app, _ := args.Get(0).(*domain.Application)
	return app, args.Error(1)
}
func (m *mockApplicationUC) ExportApplications(ctx context.Context, jobID int64, format string) (*domain.ExportFile, error) {
	args := m.Called(ctx, jobID, format)
	file, _ := args.Get(0).(*domain.ExportFile)
	return file, args.Error(1)
}

type mockProfileUC struct{ mock.Mock }

func (m *mockProfileUC) GetWorkerProfile(ctx context.Context, email string) (*domain.WorkerProfile, error) {
	args := m.Called(ctx, email)
	p, _ := args.Get(0).(*domain.WorkerProfile)
	return p, args.Error(1)
}
func (m *mockProfileUC) UpdateWorkerProfile(ctx context.Context, email string, patch domain.WorkerProfilePatch) (*domain.WorkerProfile, error) {
	args := m.Called(ctx, email, patch)
	p, _ := args.Get(0).(*domain.WorkerProfile)
	return p, args.Error(1)
}
func (m *mockProfileUC) GetContractorProfile(ctx context.Context, email string) (*domain.ContractorProfile, error) {
	args := m.Called(ctx, email)
	p, _ := args.Get(0).(*domain.ContractorProfile)
	return p, args.Error(1)
}
func (m *mockProfileUC) UpdateContractorProfile(ctx context.Context, email string, patch domain.ContractorProfilePatch) (*domain.ContractorProfile, error) {
	args := m.Called(ctx, email, patch)
	p, _ := args.Get(0).(*domain.ContractorProfile)
	return p, args.Error(1)
}

type mockUserUC struct{ mock.Mock }

func (m *mockUserUC) CreateUser(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserUC) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}
func (m *mockUserUC) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}
func (m *mockUserUC) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}
func (m *mockUserUC) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}
func (m *mockUserUC) UploadProfilePhoto(ctx context.Context, id int64, data []byte) (*domain.User, error) {
	args := m.Called(ctx, id, data)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type mockHealthUC struct{ mock.Mock }

func (m *mockHealthUC) Check(ctx context.Context) (map[string]string, bool) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]string), args.Bool(1)
}
