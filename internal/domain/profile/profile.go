package profile

import (
	"context"
	"time"
)

// Profile is the site owner's card. The row with the highest ID is the
// active one; older rows are ignored.
type Profile struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Title             string    `json:"title"`
	Location          string    `json:"location"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	PhotoURL          *string   `json:"photo_url"`
	PhotoThumbnailURL *string   `json:"photo_thumbnail_url"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Details struct {
	Name     string
	Title    string
	Location string
	Email    string
	Phone    string
}

type Repository interface {
	GetLatest(ctx context.Context) (*Profile, error)
	Create(ctx context.Context, p *Profile) error
	UpdateLatest(ctx context.Context, d Details) error
	SetLatestPhoto(ctx context.Context, photoURL string) error
	// SetPhotoThumbnail only touches the row whose photo_url still equals photoURL.
	SetPhotoThumbnail(ctx context.Context, photoURL, thumbnailURL string) error
}
