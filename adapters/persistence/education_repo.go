package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/personal-portfolio/internal/domain/education"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	if err := row.Scan(&e.ID, &e.Institution, &e.Location, &e.StartYear, &e.EndYear); err != nil {
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	return e, nil
}

func (r *postgresEducationRepo) Create(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO education (institution, location, start_year, end_year)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, e.Institution, e.Location, e.StartYear, e.EndYear).Scan(&e.ID)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE education SET
			institution = $2, location = $3, start_year = $4, end_year = $5
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, e.ID, e.Institution, e.Location, e.StartYear, e.EndYear)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	warnNoRows(r.logger, cmdTag, "update", "education", e.ID)
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	warnNoRows(r.logger, cmdTag, "delete", "education", id)
	return nil
}

func (r *postgresEducationRepo) List(ctx context.Context) ([]*education.Education, error) {
	builder := psql.Select("id", "institution", "location", "start_year", "end_year").
		From("education").
		OrderBy("start_year DESC", "id ASC")
	return selectAll(ctx, r.db, builder, "education", scanEducation)
}
