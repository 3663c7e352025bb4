package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/personal-portfolio/internal/domain/tool"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type postgresToolRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresToolRepo(db *pgxpool.Pool, logger logger.Logger) tool.Repository {
	return &postgresToolRepo{db: db, logger: logger}
}

func scanTool(row pgx.Row) (*tool.Tool, error) {
	t := &tool.Tool{}
	if err := row.Scan(&t.ID, &t.Name, &t.IconURL); err != nil {
		return nil, apperror.NewInternal("failed to scan tool row", err)
	}
	return t, nil
}

func (r *postgresToolRepo) Create(ctx context.Context, t *tool.Tool) error {
	query := `INSERT INTO tools (name, icon_url) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRow(ctx, query, t.Name, t.IconURL).Scan(&t.ID); err != nil {
		return apperror.NewInternal("failed to save tool", err)
	}
	return nil
}

func (r *postgresToolRepo) Update(ctx context.Context, t *tool.Tool) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE tools SET name = $2, icon_url = $3 WHERE id = $1`, t.ID, t.Name, t.IconURL)
	if err != nil {
		return apperror.NewInternal("failed to update tool", err)
	}
	warnNoRows(r.logger, cmdTag, "update", "tool", t.ID)
	return nil
}

func (r *postgresToolRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete tool", err)
	}
	warnNoRows(r.logger, cmdTag, "delete", "tool", id)
	return nil
}

func (r *postgresToolRepo) List(ctx context.Context) ([]*tool.Tool, error) {
	builder := psql.Select("id", "name", "icon_url").
		From("tools").
		OrderBy("name ASC", "id ASC")
	return selectAll(ctx, r.db, builder, "tools", scanTool)
}
