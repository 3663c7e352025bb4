package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/personal-portfolio/internal/domain/certificate"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type postgresCertificateRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCertificateRepo(db *pgxpool.Pool, logger logger.Logger) certificate.Repository {
	return &postgresCertificateRepo{db: db, logger: logger}
}

func scanCertificate(row pgx.Row) (*certificate.Certificate, error) {
	c := &certificate.Certificate{}
	err := row.Scan(&c.ID, &c.Title, &c.Issuer, &c.Description, &c.IssueDate, &c.ImageURL)
	if err != nil {
		return nil, apperror.NewInternal("failed to scan certificate row", err)
	}
	return c, nil
}

func (r *postgresCertificateRepo) Create(ctx context.Context, c *certificate.Certificate) error {
	query := `
		INSERT INTO certificates (title, issuer, description, issue_date, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, c.Title, c.Issuer, c.Description, c.IssueDate, c.ImageURL).Scan(&c.ID)
	if err != nil {
		return apperror.NewInternal("failed to save certificate", err)
	}
	return nil
}

func (r *postgresCertificateRepo) Update(ctx context.Context, c *certificate.Certificate) error {
	query := `
		UPDATE certificates SET
			title = $2, issuer = $3, description = $4, issue_date = $5, image_url = $6
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, c.ID, c.Title, c.Issuer, c.Description, c.IssueDate, c.ImageURL)
	if err != nil {
		return apperror.NewInternal("failed to update certificate", err)
	}
	warnNoRows(r.logger, cmdTag, "update", "certificate", c.ID)
	return nil
}

func (r *postgresCertificateRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete certificate", err)
	}
	warnNoRows(r.logger, cmdTag, "delete", "certificate", id)
	return nil
}

func (r *postgresCertificateRepo) List(ctx context.Context) ([]*certificate.Certificate, error) {
	builder := psql.Select("id", "title", "issuer", "description", "issue_date", "image_url").
		From("certificates").
		OrderBy("id DESC")
	return selectAll(ctx, r.db, builder, "certificates", scanCertificate)
}
