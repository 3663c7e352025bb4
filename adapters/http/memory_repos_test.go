package http

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/khoahotran/personal-portfolio/internal/domain/certificate"
	"github.com/khoahotran/personal-portfolio/internal/domain/education"
	"github.com/khoahotran/personal-portfolio/internal/domain/profile"
	"github.com/khoahotran/personal-portfolio/internal/domain/project"
	"github.com/khoahotran/personal-portfolio/internal/domain/skill"
	"github.com/khoahotran/personal-portfolio/internal/domain/socialmedia"
	"github.com/khoahotran/personal-portfolio/internal/domain/tool"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

// memTable satisfies the Create/Update/Delete/List repository shape shared by
// the simple content tables.
type memTable[T any] struct {
	mu    sync.Mutex
	next  int64
	rows  map[int64]T
	id    func(*T) *int64
	order func(a, b *T) bool
}

func newMemTable[T any](id func(*T) *int64, order func(a, b *T) bool) *memTable[T] {
	return &memTable[T]{rows: map[int64]T{}, id: id, order: order}
}

func (m *memTable[T]) Create(_ context.Context, v *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	*m.id(v) = m.next
	m.rows[m.next] = *v
	return nil
}

func (m *memTable[T]) Update(_ context.Context, v *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[*m.id(v)]; ok {
		m.rows[*m.id(v)] = *v
	}
	return nil
}

func (m *memTable[T]) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *memTable[T]) List(context.Context) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*T, 0, len(m.rows))
	for _, v := range m.rows {
		v := v
		out = append(out, &v)
	}
	sort.SliceStable(out, func(i, j int) bool { return m.order(out[i], out[j]) })
	return out, nil
}

func newSkillTable() *memTable[skill.Skill] {
	return newMemTable(func(s *skill.Skill) *int64 { return &s.ID }, func(a, b *skill.Skill) bool {
		if a.Percentage != b.Percentage {
			return a.Percentage > b.Percentage
		}
		return a.ID < b.ID
	})
}

func newEducationTable() *memTable[education.Education] {
	return newMemTable(func(e *education.Education) *int64 { return &e.ID }, func(a, b *education.Education) bool {
		if a.StartYear != b.StartYear {
			return a.StartYear > b.StartYear
		}
		return a.ID < b.ID
	})
}

func newCertificateTable() *memTable[certificate.Certificate] {
	return newMemTable(func(c *certificate.Certificate) *int64 { return &c.ID }, func(a, b *certificate.Certificate) bool {
		return a.ID > b.ID
	})
}

func newToolTable() *memTable[tool.Tool] {
	return newMemTable(func(t *tool.Tool) *int64 { return &t.ID }, func(a, b *tool.Tool) bool {
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
}

func newSocialMediaTable() *memTable[socialmedia.SocialMedia] {
	return newMemTable(func(s *socialmedia.SocialMedia) *int64 { return &s.ID }, func(a, b *socialmedia.SocialMedia) bool {
		return a.ID < b.ID
	})
}

type memProjects struct {
	table *memTable[project.Project]
}

func newMemProjects() *memProjects {
	return &memProjects{table: newMemTable(func(p *project.Project) *int64 { return &p.ID }, func(a, b *project.Project) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})}
}

func (m *memProjects) Save(ctx context.Context, p *project.Project) error {
	return m.table.Create(ctx, p)
}

func (m *memProjects) Update(ctx context.Context, p *project.Project) error {
	return m.table.Update(ctx, p)
}

func (m *memProjects) Delete(ctx context.Context, id int64) error {
	return m.table.Delete(ctx, id)
}

func (m *memProjects) ListAll(ctx context.Context) ([]*project.Project, error) {
	return m.table.List(ctx)
}

func (m *memProjects) ListFeatured(ctx context.Context) ([]*project.Project, error) {
	all, err := m.table.List(ctx)
	if err != nil {
		return nil, err
	}
	featured := []*project.Project{}
	for _, p := range all {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

type memProfiles struct {
	mu   sync.Mutex
	rows []profile.Profile
}

func (m *memProfiles) GetLatest(context.Context) (*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rows) == 0 {
		return nil, apperror.NewNotFound("profile", "")
	}
	p := m.rows[len(m.rows)-1]
	return &p, nil
}

func (m *memProfiles) Create(_ context.Context, p *profile.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = int64(len(m.rows) + 1)
	p.UpdatedAt = time.Now().UTC()
	m.rows = append(m.rows, *p)
	return nil
}

func (m *memProfiles) UpdateLatest(_ context.Context, d profile.Details) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rows) == 0 {
		return nil
	}
	p := &m.rows[len(m.rows)-1]
	p.Name, p.Title, p.Location, p.Email, p.Phone = d.Name, d.Title, d.Location, d.Email, d.Phone
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memProfiles) SetLatestPhoto(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rows) == 0 {
		return nil
	}
	p := &m.rows[len(m.rows)-1]
	p.PhotoURL = &url
	p.PhotoThumbnailURL = nil
	return nil
}

func (m *memProfiles) SetPhotoThumbnail(context.Context, string, string) error { return nil }

type memAdmins struct {
	mu   sync.Mutex
	rows map[string]string
}

func (m *memAdmins) EnsureExists(_ context.Context, username, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows == nil {
		m.rows = map[string]string{}
	}
	if _, ok := m.rows[username]; !ok {
		m.rows[username] = hash
	}
	return nil
}

type memBlobs struct {
	mu           sync.Mutex
	contentTypes map[string]string
}

func (m *memBlobs) Upload(_ context.Context, key string, _ []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.contentTypes == nil {
		m.contentTypes = map[string]string{}
	}
	m.contentTypes[key] = contentType
	return nil
}

func (m *memBlobs) PublicURL(key string) (string, error) {
	return "https://res.example/" + key, nil
}

func (m *memBlobs) TransformedURL(key, transformation string) (string, error) {
	return "https://res.example/" + transformation + "/" + key, nil
}

func (m *memBlobs) Delete(context.Context, string) error { return nil }
