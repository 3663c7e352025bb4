package certificate

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/certificate"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type CertificateUseCase struct {
	repo     certificate.Repository
	notifier *service.ChangeNotifier
	logger   logger.Logger
}

func NewCertificateUseCase(r certificate.Repository, n *service.ChangeNotifier, log logger.Logger) *CertificateUseCase {
	return &CertificateUseCase{repo: r, notifier: n, logger: log}
}

type CreateCertificateInput struct {
	Title       string
	Issuer      string
	Description *string
	IssueDate   string
	ImageURL    *string
}

func (uc *CertificateUseCase) CreateCertificate(ctx context.Context, in CreateCertificateInput) (*certificate.Certificate, error) {
	item := &certificate.Certificate{
		Title:       in.Title,
		Issuer:      in.Issuer,
		Description: in.Description,
		IssueDate:   in.IssueDate,
		ImageURL:    in.ImageURL,
	}
	if err := item.Validate(); err != nil {
		uc.logger.Debug("Rejected certificate input", zap.Error(err))
		return nil, apperror.NewInvalidInput("certificate validation failed", err)
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, event.EventCreated, event.EntityCertificate, item.ID)
	uc.logger.Info("Certificate created", zap.Int64("certificate_id", item.ID))
	return item, nil
}

type UpdateCertificateInput struct {
	ID          int64
	Title       string
	Issuer      string
	Description *string
	IssueDate   string
	ImageURL    *string
}

// UpdateCertificate overwrites every field of the row; a missing ID is not an error.
func (uc *CertificateUseCase) UpdateCertificate(ctx context.Context, in UpdateCertificateInput) (*certificate.Certificate, error) {
	item := &certificate.Certificate{
		ID:          in.ID,
		Title:       in.Title,
		Issuer:      in.Issuer,
		Description: in.Description,
		IssueDate:   in.IssueDate,
		ImageURL:    in.ImageURL,
	}
	if err := item.Validate(); err != nil {
		uc.logger.Debug("Rejected certificate input", zap.Error(err))
		return nil, apperror.NewInvalidInput("certificate validation failed", err)
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, event.EventUpdated, event.EntityCertificate, item.ID)
	uc.logger.Info("Certificate updated", zap.Int64("certificate_id", item.ID))
	return item, nil
}

func (uc *CertificateUseCase) DeleteCertificate(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, event.EventDeleted, event.EntityCertificate, id)
	uc.logger.Info("Certificate deleted", zap.Int64("certificate_id", id))
	return nil
}

func (uc *CertificateUseCase) ListCertificate(ctx context.Context) ([]*certificate.Certificate, error) {
	return uc.repo.List(ctx)
}
