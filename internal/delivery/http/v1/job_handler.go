package v1

import (
	"net/http"

	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes
func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.POST("", handler.CreateJob)
		jobs.GET("", handler.ListJobs)
		jobs.GET("/:id", handler.GetJob)
		jobs.DELETE("/:id", handler.DeleteJob)
		jobs.GET("/contractor/:id", handler.ListJobsByContractor)
	}
}

// CreateJobRequest is the payload for posting a job
type CreateJobRequest struct {
	ContractorID    *int64   `json:"contractorId"`
	Title           string   `json:"title" binding:"max=200"`
	Location        string   `json:"location" binding:"max=200"`
	PayRate         *float64 `json:"payRate"`
	Duration        string   `json:"duration" binding:"max=100"`
	Description     string   `json:"description" binding:"max=1000"`
	SkillsRequired  string   `json:"skillsRequired" binding:"max=500"`
	Status          string   `json:"status" binding:"max=20"`
	RequiredWorkers *int     `json:"requiredWorkers"`
}

// CreateJob godoc
// @Summary      Create a job
// @Description  Post a new job. Status defaults to OPEN.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      CreateJobRequest  true  "Job data"
// @Success      201   {object}  response.Response{data=domain.Job}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job := &domain.Job{
		ContractorID:    req.ContractorID,
		Title:           req.Title,
		Location:        req.Location,
		PayRate:         req.PayRate,
		Duration:        req.Duration,
		Description:     req.Description,
		SkillsRequired:  req.SkillsRequired,
		Status:          req.Status,
		RequiredWorkers: req.RequiredWorkers,
	}

	if err := h.jobUC.CreateJob(c, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created successfully", job)
}

// ListJobs godoc
// @Summary      List jobs
// @Description  List jobs newest first, optionally filtered
// @Tags         jobs
// @Produce      json
// @Param        status    query     string  false  "Job status, e.g. OPEN"
// @Param        location  query     string  false  "Location keyword"
// @Param        q         query     string  false  "Title keyword"
// @Param        skill     query     string  false  "Required skill keyword"
// @Success      200       {object}  response.Response{data=[]domain.Job}
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := domain.JobFilter{
		Status:   c.Query("status"),
		Location: c.Query("location"),
		Query:    c.Query("q"),
		Skill:    c.Query("skill"),
	}

	jobs, err := h.jobUC.ListJobs(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetJob godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.jobUC.GetJob(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Deletes the job and every application to it
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	if err := h.jobUC.DeleteJob(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// ListJobsByContractor godoc
// @Summary      List a contractor's jobs
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Contractor ID"
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /jobs/contractor/{id} [get]
func (h *JobHandler) ListJobsByContractor(c *gin.Context) {
	id, ok := pathID(c, "id", "contractor")
	if !ok {
		return
	}

	jobs, err := h.jobUC.ListJobsByContractor(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}
