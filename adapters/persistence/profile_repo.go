package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/internal/domain/profile"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

const latestProfileID = `(SELECT id FROM profiles ORDER BY id DESC LIMIT 1)`

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) GetLatest(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT id, name, title, location, email, phone, photo_url, photo_thumbnail_url, updated_at
		FROM profiles
		ORDER BY id DESC
		LIMIT 1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Location,
		&p.Email,
		&p.Phone,
		&p.PhotoURL,
		&p.PhotoThumbnailURL,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (name, title, location, email, phone, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Title, p.Location, p.Email, p.Phone, p.PhotoURL,
	).Scan(&p.ID, &p.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to create profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) UpdateLatest(ctx context.Context, d profile.Details) error {
	query := `
		UPDATE profiles SET
			name = $1, title = $2, location = $3, email = $4, phone = $5,
			updated_at = NOW()
		WHERE id = ` + latestProfileID
	cmdTag, err := r.db.Exec(ctx, query, d.Name, d.Title, d.Location, d.Email, d.Phone)
	if err != nil {
		return apperror.NewInternal("failed to update profile", err)
	}
	warnNoRows(r.logger, cmdTag, "update", "profile", 0)
	return nil
}

func (r *postgresProfileRepo) SetLatestPhoto(ctx context.Context, photoURL string) error {
	query := `
		UPDATE profiles SET
			photo_url = $1, photo_thumbnail_url = NULL, updated_at = NOW()
		WHERE id = ` + latestProfileID
	cmdTag, err := r.db.Exec(ctx, query, photoURL)
	if err != nil {
		return apperror.NewInternal("failed to set profile photo", err)
	}
	warnNoRows(r.logger, cmdTag, "set_photo", "profile", 0)
	return nil
}

func (r *postgresProfileRepo) SetPhotoThumbnail(ctx context.Context, photoURL, thumbnailURL string) error {
	query := `UPDATE profiles SET photo_thumbnail_url = $2 WHERE photo_url = $1`
	cmdTag, err := r.db.Exec(ctx, query, photoURL, thumbnailURL)
	if err != nil {
		return apperror.NewInternal("failed to set profile photo thumbnail", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Info("Profile photo changed before thumbnail was ready, skipping", zap.String("photo_url", photoURL))
	}
	return nil
}
