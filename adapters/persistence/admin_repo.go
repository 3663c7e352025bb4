package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/internal/domain/admin"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type postgresAdminRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAdminRepo(db *pgxpool.Pool, logger logger.Logger) admin.Repository {
	return &postgresAdminRepo{db: db, logger: logger}
}

func (r *postgresAdminRepo) EnsureExists(ctx context.Context, username, passwordHash string) error {
	query := `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`
	cmdTag, err := r.db.Exec(ctx, query, username, passwordHash)
	if err != nil {
		return apperror.NewInternal("failed to ensure admin row", err)
	}
	if cmdTag.RowsAffected() > 0 {
		r.logger.Info("Admin row created", zap.String("username", username))
	}
	return nil
}
