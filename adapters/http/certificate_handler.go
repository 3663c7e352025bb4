package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	certificateUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/certificate"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

type CertificateHandler struct {
	useCase *certificateUC.CertificateUseCase
}

func NewCertificateHandler(uc *certificateUC.CertificateUseCase) *CertificateHandler {
	return &CertificateHandler{useCase: uc}
}

func (h *CertificateHandler) CreateCertificate(c *gin.Context) {
	var req CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	_, err := h.useCase.CreateCertificate(c.Request.Context(), certificateUC.CreateCertificateInput{
		Title:       req.Title,
		Issuer:      req.Issuer,
		Description: req.Description,
		IssueDate:   req.IssueDate,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true})
}

func (h *CertificateHandler) UpdateCertificate(c *gin.Context) {
	id, ok := idParam(c, "certificate")
	if !ok {
		return
	}
	var req CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	_, err := h.useCase.UpdateCertificate(c.Request.Context(), certificateUC.UpdateCertificateInput{
		ID:          id,
		Title:       req.Title,
		Issuer:      req.Issuer,
		Description: req.Description,
		IssueDate:   req.IssueDate,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *CertificateHandler) DeleteCertificate(c *gin.Context) {
	id, ok := idParam(c, "certificate")
	if !ok {
		return
	}
	if err := h.useCase.DeleteCertificate(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
