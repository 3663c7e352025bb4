package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/profile"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase     *profileUC.ProfileUseCase
	uploadPhotoUseCase *profileUC.UploadPhotoUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, uploadUC *profileUC.UploadPhotoUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:     uc,
		uploadPhotoUseCase: uploadUC,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDataDTO(output.View))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		Name:     req.Name,
		Title:    req.Title,
		Location: req.Location,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	var req UploadPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("photoData and fileName are required", err))
		return
	}

	output, err := h.uploadPhotoUseCase.Execute(c.Request.Context(), profileUC.UploadPhotoInput{
		PhotoData: req.PhotoData,
		FileName:  req.FileName,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, UploadPhotoResponse{Success: true, PhotoURL: output.PhotoURL})
}
