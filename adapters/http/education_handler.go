package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	educationUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/education"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

type EducationHandler struct {
	useCase *educationUC.EducationUseCase
}

func NewEducationHandler(uc *educationUC.EducationUseCase) *EducationHandler {
	return &EducationHandler{useCase: uc}
}

func (h *EducationHandler) CreateEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	_, err := h.useCase.CreateEducation(c.Request.Context(), educationUC.CreateEducationInput{
		Institution: req.Institution,
		Location:    req.Location,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true})
}

func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	id, ok := idParam(c, "education")
	if !ok {
		return
	}
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	_, err := h.useCase.UpdateEducation(c.Request.Context(), educationUC.UpdateEducationInput{
		ID:          id,
		Institution: req.Institution,
		Location:    req.Location,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	id, ok := idParam(c, "education")
	if !ok {
		return
	}
	if err := h.useCase.DeleteEducation(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
