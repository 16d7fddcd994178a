package v1

import (
	"fmt"
	"net/http"

	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes under /jobs
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	jobs := r.Group("/jobs")
	{
		jobs.POST("/:id/apply", handler.ApplyForJob)
		jobs.GET("/:id/applications", handler.ListJobApplications)
		jobs.GET("/:id/applications/export", handler.ExportJobApplications)
		jobs.GET("/applications/worker/:id", handler.ListWorkerApplications)
		jobs.PATCH("/applications/:id/status", handler.UpdateApplicationStatus)
	}
}

// UpdateApplicationStatusRequest is the payload for changing application status
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING ACCEPTED REJECTED"`
}

// ApplyForJob godoc
// @Summary      Apply to a job
// @Description  Submit a worker's application. A worker can apply to a job once.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true  "Job ID"
// @Param        body  body      domain.ApplicationRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/{id}/apply [post]
func (h *ApplicationHandler) ApplyForJob(c *gin.Context) {
	jobID, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	var req domain.ApplicationRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.ApplyForJob(c, jobID, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	jobID, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	apps, err := h.applicationUC.GetApplicationsForJob(c, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// ExportJobApplications godoc
// @Summary      Export applications for a job
// @Description  Download a job's applications as xlsx (default) or csv
// @Tags         applications
// @Produce      octet-stream
// @Param        id      path   int     true   "Job ID"
// @Param        format  query  string  false  "xlsx or csv"
// @Success      200
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications/export [get]
func (h *ApplicationHandler) ExportJobApplications(c *gin.Context) {
	jobID, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	file, err := h.applicationUC.ExportApplications(c, jobID, c.Query("format"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// ListWorkerApplications godoc
// @Summary      List a worker's applications
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Worker ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /jobs/applications/worker/{id} [get]
func (h *ApplicationHandler) ListWorkerApplications(c *gin.Context) {
	workerID, ok := pathID(c, "id", "worker")
	if !ok {
		return
	}

	apps, err := h.applicationUC.GetApplicationsByWorker(c, workerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                             true  "Application ID"
// @Param        body  body      UpdateApplicationStatusRequest  true  "New status"
// @Success      200   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobs/applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := pathID(c, "id", "application")
	if !ok {
		return
	}

	var req UpdateApplicationStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.UpdateApplicationStatus(c, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
