package auth

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/internal/domain/admin"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/auth"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

// Credentials is the single admin account accepted by the login endpoint.
type Credentials struct {
	Username string
	Password string
}

type LoginUseCase struct {
	adminRepo    admin.Repository
	tokenSvc     *auth.TokenService
	creds        Credentials
	passwordHash string
	logger       logger.Logger
}

// NewLoginUseCase hashes the configured password once; the hash is what gets
// stored in the admins table.
func NewLoginUseCase(repo admin.Repository, tokenSvc *auth.TokenService, creds Credentials, log logger.Logger) (*LoginUseCase, error) {
	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &LoginUseCase{
		adminRepo:    repo,
		tokenSvc:     tokenSvc,
		creds:        creds,
		passwordHash: hash,
		logger:       log,
	}, nil
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	// Both halves are compared so a wrong username costs the same as a wrong password.
	userOK := auth.SecureEqual(input.Username, uc.creds.Username)
	passOK := auth.SecureEqual(input.Password, uc.creds.Password)
	if !userOK || !passOK {
		err := apperror.NewUnauthorized("", nil)
		span.RecordError(err)
		uc.logger.Warn("Rejected admin login", zap.String("username", input.Username))
		return nil, err
	}

	if err := uc.adminRepo.EnsureExists(ctx, uc.creds.Username, uc.passwordHash); err != nil {
		uc.logger.Error("Failed to record admin", err, zap.String("username", uc.creds.Username))
		span.RecordError(err)
		return nil, err
	}

	token := uc.tokenSvc.GenerateToken(uc.creds.Username)
	span.SetAttributes(attribute.String("username", uc.creds.Username))
	return &LoginOutput{Token: token}, nil
}
