package certificate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/personal-portfolio/internal/domain/certificate"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type recordingRepo struct {
	created []*certificate.Certificate
	updated []*certificate.Certificate
	deleted []int64
}

func (r *recordingRepo) Create(_ context.Context, c *certificate.Certificate) error {
	c.ID = int64(len(r.created) + 1)
	r.created = append(r.created, c)
	return nil
}

func (r *recordingRepo) Update(_ context.Context, c *certificate.Certificate) error {
	r.updated = append(r.updated, c)
	return nil
}

func (r *recordingRepo) Delete(_ context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *recordingRepo) List(context.Context) ([]*certificate.Certificate, error) {
	return r.created, nil
}

func TestCreateCertificate_OptionalFieldsStayNil(t *testing.T) {
	repo := &recordingRepo{}
	uc := NewCertificateUseCase(repo, nil, logger.NewNopLogger())

	got, err := uc.CreateCertificate(context.Background(), CreateCertificateInput{
		Title:     "CKA",
		Issuer:    "CNCF",
		IssueDate: "Mar 2024",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.ImageURL)
}

func TestUpdateCertificate_OverwritesOptionalFields(t *testing.T) {
	repo := &recordingRepo{}
	uc := NewCertificateUseCase(repo, nil, logger.NewNopLogger())
	desc := "Kubernetes admin"

	_, err := uc.UpdateCertificate(context.Background(), UpdateCertificateInput{
		ID: 5, Title: "CKA", Issuer: "CNCF", IssueDate: "2024", Description: &desc,
	})
	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, int64(5), repo.updated[0].ID)
	assert.Equal(t, &desc, repo.updated[0].Description)
	assert.Nil(t, repo.updated[0].ImageURL)
}

func TestCreateCertificate_RequiredFields(t *testing.T) {
	uc := NewCertificateUseCase(&recordingRepo{}, nil, logger.NewNopLogger())

	_, err := uc.CreateCertificate(context.Background(), CreateCertificateInput{Title: "CKA", IssueDate: "2024"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Contains(t, err.Error(), "issuer is required")
}

func TestDeleteCertificate(t *testing.T) {
	repo := &recordingRepo{}
	uc := NewCertificateUseCase(repo, nil, logger.NewNopLogger())

	require.NoError(t, uc.DeleteCertificate(context.Background(), 3))
	assert.Equal(t, []int64{3}, repo.deleted)
}
