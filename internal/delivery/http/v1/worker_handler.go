package v1

import (
	"net/http"
	"strings"

	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	workerUC  domain.WorkerUsecase
	profileUC domain.ProfileUsecase
}

// NewWorkerHandler registers worker and worker profile routes
func NewWorkerHandler(r *gin.RouterGroup, workerUC domain.WorkerUsecase, profileUC domain.ProfileUsecase) {
	handler := &WorkerHandler{workerUC: workerUC, profileUC: profileUC}

	workers := r.Group("/workers")
	{
		workers.POST("", handler.CreateWorker)
		workers.GET("", handler.ListWorkers)
		workers.GET("/:id", handler.GetWorker)
		workers.PATCH("/:id", handler.UpdateWorker)
		workers.DELETE("/:id", handler.DeleteWorker)
		workers.GET("/user/:userId", handler.GetWorkerByUser)

		workers.GET("/profile/email/:email", handler.GetProfile)
		workers.PATCH("/profile/:email", handler.UpdateProfile)
	}
}

// CreateWorkerRequest registers an existing user as a worker
type CreateWorkerRequest struct {
	UserID         int64    `json:"userId" binding:"required,gt=0"`
	Skills         []string `json:"skills" binding:"omitempty,skill_list"`
	Experience     *int     `json:"experience" binding:"omitempty,min=0,max=80"`
	HourlyRate     *float64 `json:"hourlyRate" binding:"omitempty,min=0"`
	Availability   *string  `json:"availability" binding:"omitempty,max=200"`
	Certifications []string `json:"certifications" binding:"omitempty,skill_list"`
}

// CreateWorker godoc
// @Summary      Register a worker
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        body  body      CreateWorkerRequest  true  "Worker data"
// @Success      201   {object}  response.Response{data=domain.Worker}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /workers [post]
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req CreateWorkerRequest
	if !bindJSON(c, &req) {
		return
	}

	worker := &domain.Worker{
		UserID:         req.UserID,
		Skills:         req.Skills,
		Experience:     req.Experience,
		HourlyRate:     req.HourlyRate,
		Availability:   req.Availability,
		Certifications: req.Certifications,
	}
	if err := h.workerUC.CreateWorker(c, worker); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Worker created successfully", worker)
}

// ListWorkers godoc
// @Summary      List workers
// @Tags         workers
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Worker}
// @Router       /workers [get]
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	workers, err := h.workerUC.ListWorkers(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Workers retrieved", workers)
}

// GetWorker godoc
// @Summary      Get a worker
// @Tags         workers
// @Produce      json
// @Param        id   path      int  true  "Worker ID"
// @Success      200  {object}  response.Response{data=domain.Worker}
// @Failure      404  {object}  response.Response
// @Router       /workers/{id} [get]
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, ok := pathID(c, "id", "worker")
	if !ok {
		return
	}

	worker, err := h.workerUC.GetWorker(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Worker retrieved", worker)
}

// GetWorkerByUser godoc
// @Summary      Get the worker record of a user
// @Tags         workers
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response{data=domain.Worker}
// @Failure      404     {object}  response.Response
// @Router       /workers/user/{userId} [get]
func (h *WorkerHandler) GetWorkerByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}

	worker, err := h.workerUC.GetWorkerByUserID(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Worker retrieved", worker)
}

// UpdateWorker godoc
// @Summary      Partially update a worker
// @Description  Only fields present in the body change. null clears a field.
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Worker ID"
// @Param        body  body      domain.WorkerPatch  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Worker}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /workers/{id} [patch]
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	id, ok := pathID(c, "id", "worker")
	if !ok {
		return
	}

	var patch domain.WorkerPatch
	if !bindJSON(c, &patch) {
		return
	}

	worker, err := h.workerUC.UpdateWorker(c, id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Worker updated", worker)
}

// DeleteWorker godoc
// @Summary      Delete a worker
// @Tags         workers
// @Produce      json
// @Param        id   path      int  true  "Worker ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /workers/{id} [delete]
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	id, ok := pathID(c, "id", "worker")
	if !ok {
		return
	}

	if err := h.workerUC.DeleteWorker(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Worker deleted", nil)
}

// GetProfile godoc
// @Summary      Get a worker profile by email
// @Description  User fields merged with worker fields. Worker fields are omitted when the user is not a worker yet.
// @Tags         profiles
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  response.Response{data=domain.WorkerProfile}
// @Failure      404    {object}  response.Response
// @Router       /workers/profile/email/{email} [get]
func (h *WorkerHandler) GetProfile(c *gin.Context) {
	email, ok := pathEmail(c)
	if !ok {
		return
	}

	profile, err := h.profileUC.GetWorkerProfile(c, email)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Update a worker profile by email
// @Description  Updates the user and worker records together. The worker record is created on first update.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        email  path      string                     true  "User email"
// @Param        body   body      domain.WorkerProfilePatch  true  "Fields to change"
// @Success      200    {object}  response.Response{data=domain.WorkerProfile}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /workers/profile/{email} [patch]
func (h *WorkerHandler) UpdateProfile(c *gin.Context) {
	email, ok := pathEmail(c)
	if !ok {
		return
	}

	var patch domain.WorkerProfilePatch
	if !bindJSON(c, &patch) {
		return
	}

	profile, err := h.profileUC.UpdateWorkerProfile(c, email, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

func pathEmail(c *gin.Context) (string, bool) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" || !strings.Contains(email, "@") {
		c.Error(apperror.BadRequest("Invalid email"))
		return "", false
	}
	return email, true
}
