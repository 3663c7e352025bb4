package profile

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/khoahotran/personal-portfolio/internal/domain/certificate"
	"github.com/khoahotran/personal-portfolio/internal/domain/education"
	"github.com/khoahotran/personal-portfolio/internal/domain/profile"
	"github.com/khoahotran/personal-portfolio/internal/domain/project"
	"github.com/khoahotran/personal-portfolio/internal/domain/skill"
	"github.com/khoahotran/personal-portfolio/internal/domain/socialmedia"
	"github.com/khoahotran/personal-portfolio/internal/domain/tool"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

type fakeProfileRepo struct {
	mu        sync.Mutex
	latest    *profile.Profile
	photoErr  error
	thumbSets int
}

func (f *fakeProfileRepo) GetLatest(context.Context) (*profile.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latest == nil {
		return nil, apperror.NewNotFound("profile", "")
	}
	cp := *f.latest
	return &cp, nil
}

func (f *fakeProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = 1
	f.latest = p
	return nil
}

func (f *fakeProfileRepo) UpdateLatest(_ context.Context, d profile.Details) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latest == nil {
		return nil
	}
	f.latest.Name, f.latest.Title, f.latest.Location = d.Name, d.Title, d.Location
	f.latest.Email, f.latest.Phone = d.Email, d.Phone
	return nil
}

func (f *fakeProfileRepo) SetLatestPhoto(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.photoErr != nil {
		return f.photoErr
	}
	if f.latest != nil {
		f.latest.PhotoURL = &url
		f.latest.PhotoThumbnailURL = nil
	}
	return nil
}

func (f *fakeProfileRepo) SetPhotoThumbnail(_ context.Context, photoURL, thumbURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.thumbSets++
	if f.latest != nil && f.latest.PhotoURL != nil && *f.latest.PhotoURL == photoURL {
		f.latest.PhotoThumbnailURL = &thumbURL
	}
	return nil
}

type fakeSkillRepo struct {
	items  []*skill.Skill
	onList func()
}

func (f *fakeSkillRepo) Create(context.Context, *skill.Skill) error      { return nil }
func (f *fakeSkillRepo) Update(context.Context, *skill.Skill) error      { return nil }
func (f *fakeSkillRepo) Delete(context.Context, int64) error             { return nil }
func (f *fakeSkillRepo) List(context.Context) ([]*skill.Skill, error) {
	if f.onList != nil {
		f.onList()
	}
	return f.items, nil
}

type fakeEducationRepo struct{ err error }

func (f *fakeEducationRepo) Create(context.Context, *education.Education) error { return nil }
func (f *fakeEducationRepo) Update(context.Context, *education.Education) error { return nil }
func (f *fakeEducationRepo) Delete(context.Context, int64) error                { return nil }
func (f *fakeEducationRepo) List(context.Context) ([]*education.Education, error) {
	return []*education.Education{}, f.err
}

type fakeCertificateRepo struct{}

func (fakeCertificateRepo) Create(context.Context, *certificate.Certificate) error { return nil }
func (fakeCertificateRepo) Update(context.Context, *certificate.Certificate) error { return nil }
func (fakeCertificateRepo) Delete(context.Context, int64) error                    { return nil }
func (fakeCertificateRepo) List(context.Context) ([]*certificate.Certificate, error) {
	return []*certificate.Certificate{}, nil
}

type fakeToolRepo struct{}

func (fakeToolRepo) Create(context.Context, *tool.Tool) error   { return nil }
func (fakeToolRepo) Update(context.Context, *tool.Tool) error   { return nil }
func (fakeToolRepo) Delete(context.Context, int64) error        { return nil }
func (fakeToolRepo) List(context.Context) ([]*tool.Tool, error) { return []*tool.Tool{}, nil }

type fakeSocialRepo struct{}

func (fakeSocialRepo) Create(context.Context, *socialmedia.SocialMedia) error { return nil }
func (fakeSocialRepo) Update(context.Context, *socialmedia.SocialMedia) error { return nil }
func (fakeSocialRepo) Delete(context.Context, int64) error                    { return nil }
func (fakeSocialRepo) List(context.Context) ([]*socialmedia.SocialMedia, error) {
	return []*socialmedia.SocialMedia{}, nil
}

type fakeProjectRepo struct{ featured []*project.Project }

func (f *fakeProjectRepo) Save(context.Context, *project.Project) error   { return nil }
func (f *fakeProjectRepo) Update(context.Context, *project.Project) error { return nil }
func (f *fakeProjectRepo) Delete(context.Context, int64) error            { return nil }
func (f *fakeProjectRepo) ListFeatured(context.Context) ([]*project.Project, error) {
	return f.featured, nil
}
func (f *fakeProjectRepo) ListAll(context.Context) ([]*project.Project, error) {
	return f.featured, nil
}

// memoryCache stores views as JSON per generation, like the Redis adapter.
type memoryCache struct {
	mu            sync.Mutex
	gen           int64
	views         map[int64][]byte
	invalidations int
	getErr        error
}

func (c *memoryCache) Get(_ context.Context, dst any) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	b, ok := c.views[c.gen]
	if !ok {
		return c.gen, false, nil
	}
	return c.gen, true, json.Unmarshal(b, dst)
}

func (c *memoryCache) Set(_ context.Context, gen int64, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if c.views == nil {
		c.views = map[int64][]byte{}
	}
	c.views[gen] = b
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.invalidations++
	return nil
}

// cached reports whether a view is stored for the current generation.
func (c *memoryCache) cached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.views[c.gen]
	return ok
}

type storedBlob struct {
	data        []byte
	contentType string
}

type fakeBlobStore struct {
	mu        sync.Mutex
	objects   map[string]storedBlob
	uploadErr error
	deleted   chan string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string]storedBlob{}, deleted: make(chan string, 4)}
}

func (f *fakeBlobStore) Upload(_ context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return f.uploadErr
	}
	if _, exists := f.objects[key]; exists {
		return errors.New("object already exists")
	}
	f.objects[key] = storedBlob{data: data, contentType: contentType}
	return nil
}

func (f *fakeBlobStore) PublicURL(key string) (string, error) {
	return "https://blobs.example/" + key, nil
}

func (f *fakeBlobStore) TransformedURL(key, transformation string) (string, error) {
	return "https://blobs.example/" + transformation + "/" + key, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	delete(f.objects, key)
	f.mu.Unlock()
	f.deleted <- key
	return nil
}

func (f *fakeBlobStore) object(key string) (storedBlob, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.objects[key]
	return b, ok
}
