package auth

import (
	"context"

	"github.com/khoahotran/personal-portfolio/pkg/auth"
)

type VerifyTokenUseCase struct {
	tokenSvc *auth.TokenService
}

func NewVerifyTokenUseCase(tokenSvc *auth.TokenService) *VerifyTokenUseCase {
	return &VerifyTokenUseCase{tokenSvc: tokenSvc}
}

type VerifyTokenInput struct {
	Token string
}

type VerifyTokenOutput struct {
	Valid bool
}

// Execute has no error path: a token that cannot be decoded is reported as invalid.
func (uc *VerifyTokenUseCase) Execute(ctx context.Context, input VerifyTokenInput) *VerifyTokenOutput {
	_, span := tracer.Start(ctx, "VerifyToken")
	defer span.End()

	return &VerifyTokenOutput{Valid: uc.tokenSvc.ValidateToken(input.Token)}
}
