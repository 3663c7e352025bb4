package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/personal-portfolio/internal/domain/socialmedia"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type postgresSocialMediaRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSocialMediaRepo(db *pgxpool.Pool, logger logger.Logger) socialmedia.Repository {
	return &postgresSocialMediaRepo{db: db, logger: logger}
}

func scanSocialMedia(row pgx.Row) (*socialmedia.SocialMedia, error) {
	s := &socialmedia.SocialMedia{}
	if err := row.Scan(&s.ID, &s.Platform, &s.URL, &s.Username); err != nil {
		return nil, apperror.NewInternal("failed to scan social media row", err)
	}
	return s, nil
}

func (r *postgresSocialMediaRepo) Create(ctx context.Context, s *socialmedia.SocialMedia) error {
	query := `INSERT INTO social_media (platform, url, username) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRow(ctx, query, s.Platform, s.URL, s.Username).Scan(&s.ID); err != nil {
		return apperror.NewInternal("failed to save social media", err)
	}
	return nil
}

func (r *postgresSocialMediaRepo) Update(ctx context.Context, s *socialmedia.SocialMedia) error {
	query := `UPDATE social_media SET platform = $2, url = $3, username = $4 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.Platform, s.URL, s.Username)
	if err != nil {
		return apperror.NewInternal("failed to update social media", err)
	}
	warnNoRows(r.logger, cmdTag, "update", "social_media", s.ID)
	return nil
}

func (r *postgresSocialMediaRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM social_media WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete social media", err)
	}
	warnNoRows(r.logger, cmdTag, "delete", "social_media", id)
	return nil
}

func (r *postgresSocialMediaRepo) List(ctx context.Context) ([]*socialmedia.SocialMedia, error) {
	builder := psql.Select("id", "platform", "url", "username").
		From("social_media").
		OrderBy("id ASC")
	return selectAll(ctx, r.db, builder, "social media", scanSocialMedia)
}
