package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/internal/config"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func NewPostgresPool(cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}

// RunMigrations applies every pending migration found at sourceURL
// (e.g. "file://migrations").
func RunMigrations(sourceURL, dsn string, log logger.Logger) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	log.Info("Database migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// selectAll runs a SELECT built with squirrel and scans every row with scan.
func selectAll[T any](ctx context.Context, db *pgxpool.Pool, builder sq.SelectBuilder, what string, scan func(pgx.Row) (T, error)) ([]T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("failed to build list %s query", what), err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("failed to query %s", what), err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("error iterating %s rows", what), err)
	}
	return items, nil
}

// warnNoRows logs writes that matched nothing. Callers still report success.
func warnNoRows(l logger.Logger, tag pgconn.CommandTag, op, entity string, id int64) {
	if tag.RowsAffected() == 0 {
		l.Warn("Write matched no rows", zap.String("op", op), zap.String("entity", entity), zap.Int64("id", id))
	}
}
