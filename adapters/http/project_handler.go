package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/project"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

type ProjectHandler struct {
	createProjectUseCase        *projectUC.CreateProjectUseCase
	listProjectsUseCase         *projectUC.ListProjectsUseCase
	listFeaturedProjectsUseCase *projectUC.ListFeaturedProjectsUseCase
	updateProjectUseCase        *projectUC.UpdateProjectUseCase
	deleteProjectUseCase        *projectUC.DeleteProjectUseCase
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	listFeaturedUC *projectUC.ListFeaturedProjectsUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase:        createUC,
		listProjectsUseCase:         listUC,
		listFeaturedProjectsUseCase: listFeaturedUC,
		updateProjectUseCase:        updateUC,
		deleteProjectUseCase:        deleteUC,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := projectUC.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		DemoURL:      req.DemoURL,
		GithubURL:    req.GithubURL,
		ImageURL:     req.ImageURL,
		Featured:     req.Featured,
	}

	if _, err := h.createProjectUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := idParam(c, "project")
	if !ok {
		return
	}
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := projectUC.UpdateProjectInput{
		ProjectID:    projectID,
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		DemoURL:      req.DemoURL,
		GithubURL:    req.GithubURL,
		ImageURL:     req.ImageURL,
		Featured:     req.Featured,
	}

	if err := h.updateProjectUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, ok := idParam(c, "project")
	if !ok {
		return
	}

	input := projectUC.DeleteProjectInput{ProjectID: projectID}
	if err := h.deleteProjectUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// ListProjects is the dashboard view: featured and non-featured rows.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	output, err := h.listProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTOs(output.Projects))
}

func (h *ProjectHandler) ListFeaturedProjects(c *gin.Context) {
	output, err := h.listFeaturedProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTOs(output.Projects))
}
