package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/personal-portfolio/internal/domain/skill"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	s := &skill.Skill{}
	if err := row.Scan(&s.ID, &s.Name, &s.Percentage, &s.Category); err != nil {
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return s, nil
}

func (r *postgresSkillRepo) Create(ctx context.Context, s *skill.Skill) error {
	query := `
		INSERT INTO skills (name, percentage, category)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, s.Name, s.Percentage, s.Category).Scan(&s.ID); err != nil {
		return apperror.NewInternal("failed to save skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	query := `UPDATE skills SET name = $2, percentage = $3, category = $4 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Percentage, s.Category)
	if err != nil {
		return apperror.NewInternal("failed to update skill", err)
	}
	warnNoRows(r.logger, cmdTag, "update", "skill", s.ID)
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	warnNoRows(r.logger, cmdTag, "delete", "skill", id)
	return nil
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	builder := psql.Select("id", "name", "percentage", "category").
		From("skills").
		OrderBy("percentage DESC", "id ASC")
	return selectAll(ctx, r.db, builder, "skills", scanSkill)
}
