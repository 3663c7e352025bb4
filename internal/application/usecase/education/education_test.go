package education

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/education"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type memEducationRepo struct {
	nextID int64
	rows   map[int64]education.Education
}

func newMemEducationRepo() *memEducationRepo {
	return &memEducationRepo{rows: map[int64]education.Education{}}
}

func (r *memEducationRepo) Create(_ context.Context, e *education.Education) error {
	r.nextID++
	e.ID = r.nextID
	r.rows[e.ID] = *e
	return nil
}

func (r *memEducationRepo) Update(_ context.Context, e *education.Education) error {
	if _, ok := r.rows[e.ID]; ok {
		r.rows[e.ID] = *e
	}
	return nil
}

func (r *memEducationRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

func (r *memEducationRepo) List(context.Context) ([]*education.Education, error) {
	out := make([]*education.Education, 0, len(r.rows))
	for _, e := range r.rows {
		e := e
		out = append(out, &e)
	}
	return out, nil
}

type countingCache struct{ invalidations int }

func (c *countingCache) Get(context.Context, any) (int64, bool, error) { return 0, false, nil }
func (c *countingCache) Set(context.Context, int64, any) error         { return nil }
func (c *countingCache) Invalidate(context.Context) error {
	c.invalidations++
	return nil
}

func newEducationUseCase() (*EducationUseCase, *memEducationRepo, *countingCache, *observer.ObservedLogs) {
	repo := newMemEducationRepo()
	cache := &countingCache{}
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.FromZap(zap.New(core))
	return NewEducationUseCase(repo, service.NewChangeNotifier(cache, nil, log), log), repo, cache, logs
}

func TestEducationLifecycle(t *testing.T) {
	uc, repo, cache, logs := newEducationUseCase()
	ctx := context.Background()

	created, err := uc.CreateEducation(ctx, CreateEducationInput{Institution: "HCMUS", Location: "HCMC", StartYear: 2020, EndYear: 2024})
	require.NoError(t, err)
	assert.Equal(t, education.Education{ID: created.ID, Institution: "HCMUS", Location: "HCMC", StartYear: 2020, EndYear: 2024}, repo.rows[created.ID])

	_, err = uc.UpdateEducation(ctx, UpdateEducationInput{ID: created.ID, Institution: "HCMUS", Location: "", StartYear: 2019, EndYear: 2023})
	require.NoError(t, err)
	assert.Equal(t, education.Education{ID: created.ID, Institution: "HCMUS", StartYear: 2019, EndYear: 2023}, repo.rows[created.ID])

	require.NoError(t, uc.DeleteEducation(ctx, created.ID))
	require.NoError(t, uc.DeleteEducation(ctx, created.ID))
	assert.Empty(t, repo.rows)

	assert.Equal(t, 4, cache.invalidations)
	entries := logs.FilterMessage("Education created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ContextMap()["education_id"])
	assert.Equal(t, 2, logs.FilterMessage("Education deleted").Len())
}

func TestEducation_InstitutionRequired(t *testing.T) {
	uc, repo, cache, logs := newEducationUseCase()

	_, err := uc.CreateEducation(context.Background(), CreateEducationInput{Institution: " ", StartYear: 2020})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, repo.rows)
	assert.Zero(t, cache.invalidations)
	assert.Equal(t, 1, logs.FilterMessage("Rejected education input").Len())
}

func TestEducation_UpdateMissingIDSucceeds(t *testing.T) {
	uc, repo, cache, _ := newEducationUseCase()

	_, err := uc.UpdateEducation(context.Background(), UpdateEducationInput{ID: 42, Institution: "Ghost U"})
	assert.NoError(t, err)
	assert.Empty(t, repo.rows)
	assert.Equal(t, 1, cache.invalidations)
}
