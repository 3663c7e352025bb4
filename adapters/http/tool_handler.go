package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	toolUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/tool"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

type ToolHandler struct {
	useCase *toolUC.ToolUseCase
}

func NewToolHandler(uc *toolUC.ToolUseCase) *ToolHandler {
	return &ToolHandler{useCase: uc}
}

func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	_, err := h.useCase.CreateTool(c.Request.Context(), toolUC.CreateToolInput{
		Name:    req.Name,
		IconURL: req.IconURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true})
}

func (h *ToolHandler) UpdateTool(c *gin.Context) {
	id, ok := idParam(c, "tool")
	if !ok {
		return
	}
	var req ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	_, err := h.useCase.UpdateTool(c.Request.Context(), toolUC.UpdateToolInput{
		ID:      id,
		Name:    req.Name,
		IconURL: req.IconURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *ToolHandler) DeleteTool(c *gin.Context) {
	id, ok := idParam(c, "tool")
	if !ok {
		return
	}
	if err := h.useCase.DeleteTool(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
