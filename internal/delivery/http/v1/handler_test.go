package v1

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-marketplace-backend/config"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/realtime"
	"go-marketplace-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     json.RawMessage `json:"error"`
	RequestID string          `json:"request_id"`
}

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigins:           []string{"http://localhost:5173"},
		RateLimitGlobalThreshold: 1000,
		RateLimitWindowSeconds:   60,
		WSInsecureSkipVerify:     true,
	}
}

func newTestRouter(deps RouterDeps) *gin.Engine {
	if deps.Config == nil {
		deps.Config = testConfig()
	}
	if deps.Hub == nil {
		deps.Hub = realtime.NewHub(8)
	}
	return NewRouter(deps)
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestJobHandlers(t *testing.T) {
	jobUC := new(mockJobUC)
	r := newTestRouter(RouterDeps{JobUC: jobUC})

	t.Run("create job", func(t *testing.T) {
		jobUC.On("CreateJob", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool {
			return j.Title == "Plumber needed" && j.PayRate != nil && *j.PayRate == 40
		})).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			j.ID = 1
			j.Status = domain.JobStatusOpen
		}).Return(nil).Once()

		w, env := doJSON(t, r, http.MethodPost, "/api/jobs", `{"title":"Plumber needed","payRate":40,"location":"Austin"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		assert.NotEmpty(t, env.RequestID)

		var job domain.Job
		require.NoError(t, json.Unmarshal(env.Data, &job))
		assert.Equal(t, int64(1), job.ID)
		assert.Equal(t, "OPEN", job.Status)
	})

	t.Run("description over 1000 chars", func(t *testing.T) {
		body := `{"title":"x","description":"` + strings.Repeat("d", 1001) + `"}`
		w, env := doJSON(t, r, http.MethodPost, "/api/jobs", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "Description")
	})

	t.Run("list passes filters", func(t *testing.T) {
		jobUC.On("ListJobs", mock.Anything, domain.JobFilter{Status: "OPEN", Location: "Austin", Query: "plumb"}).
			Return([]domain.Job{{ID: 1}}, nil).Once()

		w, env := doJSON(t, r, http.MethodGet, "/api/jobs?status=OPEN&location=Austin&q=plumb", "")
		assert.Equal(t, http.StatusOK, w.Code)
		var jobs []domain.Job
		require.NoError(t, json.Unmarshal(env.Data, &jobs))
		assert.Len(t, jobs, 1)
	})

	t.Run("invalid id", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodGet, "/api/jobs/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid job ID", env.Message)
	})

	t.Run("missing job", func(t *testing.T) {
		jobUC.On("GetJob", mock.Anything, int64(99)).Return(nil, apperror.NotFound("Job not found")).Once()
		w, env := doJSON(t, r, http.MethodGet, "/api/jobs/99", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Job not found", env.Message)
	})

	t.Run("contractor listing", func(t *testing.T) {
		jobUC.On("ListJobsByContractor", mock.Anything, int64(2)).Return([]domain.Job{}, nil).Once()
		w, _ := doJSON(t, r, http.MethodGet, "/api/jobs/contractor/2", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		jobUC.On("DeleteJob", mock.Anything, int64(1)).Return(nil).Once()
		w, _ := doJSON(t, r, http.MethodDelete, "/api/jobs/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestApplicationHandlers(t *testing.T) {
	appUC := new(mockApplicationUC)
	r := newTestRouter(RouterDeps{ApplicationUC: appUC})

	t.Run("apply then apply again", func(t *testing.T) {
		req := domain.ApplicationRequest{WorkerID: 9, CoverNote: strPtr("Available now")}
		appUC.On("ApplyForJob", mock.Anything, int64(3), req).
			Return(&domain.Application{ID: 1, JobID: 3, WorkerID: 9, Status: "PENDING", CoverNote: req.CoverNote}, nil).Once()
		appUC.On("ApplyForJob", mock.Anything, int64(3), req).
			Return(nil, apperror.Conflict("Worker has already applied to this job")).Once()

		body := `{"workerId":9,"coverNote":"Available now"}`
		w, env := doJSON(t, r, http.MethodPost, "/api/jobs/3/apply", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		var app domain.Application
		require.NoError(t, json.Unmarshal(env.Data, &app))
		assert.Equal(t, "PENDING", app.Status)

		w, env = doJSON(t, r, http.MethodPost, "/api/jobs/3/apply", body)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("worker id is required", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/jobs/3/apply", `{"coverNote":"hi"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Worker is required", env.Message)
	})

	t.Run("status must be known", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPatch, "/api/jobs/applications/1/status", `{"status":"HIRED"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		appUC.On("UpdateApplicationStatus", mock.Anything, int64(1), "ACCEPTED").
			Return(&domain.Application{ID: 1, Status: "ACCEPTED"}, nil).Once()
		w, _ = doJSON(t, r, http.MethodPatch, "/api/jobs/applications/1/status", `{"status":"ACCEPTED"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("worker applications", func(t *testing.T) {
		appUC.On("GetApplicationsByWorker", mock.Anything, int64(9)).
			Return([]domain.Application{{ID: 1, JobTitle: "Plumber needed"}}, nil).Once()
		w, env := doJSON(t, r, http.MethodGet, "/api/jobs/applications/worker/9", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), "Plumber needed")
	})

	t.Run("export is a download", func(t *testing.T) {
		appUC.On("ExportApplications", mock.Anything, int64(3), "csv").Return(&domain.ExportFile{
			Filename:    "job_3_applications.csv",
			ContentType: "text/csv",
			Data:        []byte("APPLICATION ID\n1\n"),
		}, nil).Once()

		w, _ := doJSON(t, r, http.MethodGet, "/api/jobs/3/applications/export?format=csv", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="job_3_applications.csv"`)
		assert.Equal(t, "APPLICATION ID\n1\n", w.Body.String())
	})
}

func TestWorkerProfilePatchBinding(t *testing.T) {
	profileUC := new(mockProfileUC)
	r := newTestRouter(RouterDeps{ProfileUC: profileUC})

	t.Run("absent, null and present fields reach the usecase", func(t *testing.T) {
		profileUC.On("UpdateWorkerProfile", mock.Anything, "pat@example.com", mock.MatchedBy(func(p domain.WorkerProfilePatch) bool {
			return p.Bio.Present() && p.Bio.Value == "new bio" &&
				p.Phone.Null &&
				!p.Name.Set &&
				p.HourlyRate.Present() && p.HourlyRate.Value == 45
		})).Return(&domain.WorkerProfile{UserID: 4, Name: "Pat"}, nil).Once()

		w, env := doJSON(t, r, http.MethodPatch, "/api/workers/profile/pat@example.com",
			`{"bio":"new bio","phone":null,"hourlyRate":45}`)
		assert.Equal(t, http.StatusOK, w.Code, env.Message)
		profileUC.AssertExpectations(t)
	})

	t.Run("present values are validated", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPatch, "/api/workers/profile/pat@example.com", `{"phone":"call me"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Message, "Phone number")

		w, _ = doJSON(t, r, http.MethodPatch, "/api/workers/profile/pat@example.com", `{"skills":["  "]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get by email", func(t *testing.T) {
		profileUC.On("GetWorkerProfile", mock.Anything, "pat@example.com").
			Return(&domain.WorkerProfile{UserID: 4, Name: "Pat"}, nil).Once()
		w, env := doJSON(t, r, http.MethodGet, "/api/workers/profile/email/pat@example.com", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, string(env.Data), "workerId")
	})

	t.Run("malformed email", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/workers/profile/email/nobody", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandlers(t *testing.T) {
	userUC := new(mockUserUC)
	r := newTestRouter(RouterDeps{UserUC: userUC})

	t.Run("create validates email and name", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/users", `{"name":"Pat","email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = doJSON(t, r, http.MethodPost, "/api/users", `{"name":"Pat 🚀","email":"pat@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		userUC.On("CreateUser", mock.Anything, mock.Anything).Return(nil).Once()
		w, _ = doJSON(t, r, http.MethodPost, "/api/users", `{"name":"Pat O'Neil","email":"pat@example.com","role":"worker"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("photo upload rejects non images", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("photo", "me.jpg")
		require.NoError(t, err)
		_, _ = part.Write([]byte("definitely not a jpeg"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/users/1/photo", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		userUC.AssertNotCalled(t, "UploadProfilePhoto", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("photo upload passes valid jpeg bytes", func(t *testing.T) {
		jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 64)...)
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("photo", "me.jpg")
		require.NoError(t, err)
		_, _ = part.Write(jpeg)
		require.NoError(t, mw.Close())

		userUC.On("UploadProfilePhoto", mock.Anything, int64(1), jpeg).
			Return(&domain.User{ID: 1, ProfilePhoto: strPtr("https://cdn.example/p.jpg")}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/users/1/photo", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProjectStatusPath(t *testing.T) {
	r := newTestRouter(RouterDeps{})
	w, env := doJSON(t, r, http.MethodGet, "/api/projects/contractor/2/status/archived", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid project status", env.Message)
}

func TestHealthEndpoint(t *testing.T) {
	healthUC := new(mockHealthUC)
	r := newTestRouter(RouterDeps{HealthUC: healthUC})

	healthUC.On("Check", mock.Anything).Return(map[string]string{"status": "ok", "database": "up"}, true).Once()
	w, env := doJSON(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"database":"up"`)

	healthUC.On("Check", mock.Anything).Return(map[string]string{"status": "degraded", "database": "down"}, false).Once()
	w, env = doJSON(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, string(env.Error), `"database":"down"`)
}

func strPtr(s string) *string { return &s }
