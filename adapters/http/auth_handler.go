package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/personal-portfolio/internal/application/usecase/auth"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase       *auth.LoginUseCase
	verifyTokenUseCase *auth.VerifyTokenUseCase
}

func NewAuthHandler(loginUC *auth.LoginUseCase, verifyUC *auth.VerifyTokenUseCase) *AuthHandler {
	return &AuthHandler{
		loginUseCase:       loginUC,
		verifyTokenUseCase: verifyUC,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Success: true, Token: output.Token})
}

// VerifyToken answers {valid:false} for anything it cannot understand,
// including a malformed body.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, VerifyTokenResponse{Valid: false})
		return
	}

	output := h.verifyTokenUseCase.Execute(c.Request.Context(), auth.VerifyTokenInput{Token: req.Token})
	c.JSON(http.StatusOK, VerifyTokenResponse{Valid: output.Valid})
}
