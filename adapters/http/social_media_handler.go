package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	socialMediaUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/socialmedia"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

type SocialMediaHandler struct {
	useCase *socialMediaUC.SocialMediaUseCase
}

func NewSocialMediaHandler(uc *socialMediaUC.SocialMediaUseCase) *SocialMediaHandler {
	return &SocialMediaHandler{useCase: uc}
}

func (h *SocialMediaHandler) CreateSocialMedia(c *gin.Context) {
	var req SocialMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	_, err := h.useCase.CreateSocialMedia(c.Request.Context(), socialMediaUC.CreateSocialMediaInput{
		Platform: req.Platform,
		URL:      req.URL,
		Username: req.Username,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true})
}

func (h *SocialMediaHandler) UpdateSocialMedia(c *gin.Context) {
	id, ok := idParam(c, "social media")
	if !ok {
		return
	}
	var req SocialMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	_, err := h.useCase.UpdateSocialMedia(c.Request.Context(), socialMediaUC.UpdateSocialMediaInput{
		ID:       id,
		Platform: req.Platform,
		URL:      req.URL,
		Username: req.Username,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *SocialMediaHandler) DeleteSocialMedia(c *gin.Context) {
	id, ok := idParam(c, "social media")
	if !ok {
		return
	}
	if err := h.useCase.DeleteSocialMedia(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
