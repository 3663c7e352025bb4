package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/personal-portfolio/internal/domain/project"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

var projectColumns = []string{
	"id", "title", "description", "technologies", "demo_url", "github_url",
	"image_url", "featured", "created_at", "updated_at",
}

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Technologies,
		&p.DemoURL,
		&p.GithubURL,
		&p.ImageURL,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	return p, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (title, description, technologies, demo_url, github_url, image_url, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		p.Title, p.Description, p.Technologies, p.DemoURL, p.GithubURL,
		p.ImageURL, p.Featured, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, technologies = $4, demo_url = $5,
			github_url = $6, image_url = $7, featured = $8, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Technologies, p.DemoURL,
		p.GithubURL, p.ImageURL, p.Featured,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	warnNoRows(r.logger, cmdTag, "update", "project", p.ID)
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	warnNoRows(r.logger, cmdTag, "delete", "project", id)
	return nil
}

func (r *postgresProjectRepo) ListFeatured(ctx context.Context) ([]*project.Project, error) {
	builder := psql.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"featured": true}).
		OrderBy("created_at DESC", "id DESC")
	return selectAll(ctx, r.db, builder, "featured projects", scanProject)
}

func (r *postgresProjectRepo) ListAll(ctx context.Context) ([]*project.Project, error) {
	builder := psql.Select(projectColumns...).
		From("projects").
		OrderBy("created_at DESC", "id DESC")
	return selectAll(ctx, r.db, builder, "projects", scanProject)
}
