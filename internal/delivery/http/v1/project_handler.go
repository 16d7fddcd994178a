package v1

import (
	"net/http"

	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

// NewProjectHandler registers project routes
func NewProjectHandler(r *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	projects := r.Group("/projects")
	{
		projects.POST("", handler.CreateProject)
		projects.GET("", handler.ListProjects)
		projects.GET("/:id", handler.GetProject)
		projects.PUT("/:id", handler.UpdateProject)
		projects.DELETE("/:id", handler.DeleteProject)
		projects.GET("/contractor/:id", handler.ListByContractor)
		projects.GET("/contractor/:id/status/:status", handler.ListByContractorAndStatus)
	}
}

// CreateProject godoc
// @Summary      Create a project
// @Description  Status defaults to active and progress to 0
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Project  true  "Project data"
// @Success      201   {object}  response.Response{data=domain.Project}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var project domain.Project
	if !bindJSON(c, &project) {
		return
	}
	project.ID = 0

	if err := h.projectUC.CreateProject(c, &project); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created successfully", project)
}

// ListProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Project}
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectUC.ListProjects(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response{data=domain.Project}
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.projectUC.GetProject(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved", project)
}

// UpdateProject godoc
// @Summary      Replace a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Project ID"
// @Param        body  body      domain.Project  true  "Project data"
// @Success      200   {object}  response.Response{data=domain.Project}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	var project domain.Project
	if !bindJSON(c, &project) {
		return
	}

	updated, err := h.projectUC.UpdateProject(c, id, &project)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", updated)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	if err := h.projectUC.DeleteProject(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted", nil)
}

// ListByContractor godoc
// @Summary      List a contractor's projects
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Contractor ID"
// @Success      200  {object}  response.Response{data=[]domain.Project}
// @Router       /projects/contractor/{id} [get]
func (h *ProjectHandler) ListByContractor(c *gin.Context) {
	h.listByContractor(c, "")
}

// ListByContractorAndStatus godoc
// @Summary      List a contractor's projects with a status
// @Tags         projects
// @Produce      json
// @Param        id      path      int     true  "Contractor ID"
// @Param        status  path      string  true  "active, paused or completed"
// @Success      200     {object}  response.Response{data=[]domain.Project}
// @Failure      400     {object}  response.Response
// @Router       /projects/contractor/{id}/status/{status} [get]
func (h *ProjectHandler) ListByContractorAndStatus(c *gin.Context) {
	h.listByContractor(c, c.Param("status"))
}

func (h *ProjectHandler) listByContractor(c *gin.Context, status string) {
	id, ok := pathID(c, "id", "contractor")
	if !ok {
		return
	}

	switch status {
	case "", domain.ProjectStatusActive, domain.ProjectStatusPaused, domain.ProjectStatusCompleted:
	default:
		c.Error(apperror.BadRequest("Invalid project status"))
		return
	}

	projects, err := h.projectUC.ListProjectsByContractor(c, id, status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}
