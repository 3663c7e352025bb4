package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/skill"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

type SkillHandler struct {
	useCase *skillUC.SkillUseCase
}

func NewSkillHandler(uc *skillUC.SkillUseCase) *SkillHandler {
	return &SkillHandler{useCase: uc}
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	_, err := h.useCase.CreateSkill(c.Request.Context(), skillUC.CreateSkillInput{
		Name:       req.Name,
		Percentage: req.Percentage,
		Category:   req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true})
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, ok := idParam(c, "skill")
	if !ok {
		return
	}
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	_, err := h.useCase.UpdateSkill(c.Request.Context(), skillUC.UpdateSkillInput{
		ID:         id,
		Name:       req.Name,
		Percentage: req.Percentage,
		Category:   req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, ok := idParam(c, "skill")
	if !ok {
		return
	}
	if err := h.useCase.DeleteSkill(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
