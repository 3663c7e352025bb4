package service

import (
	"context"
)

// BlobStore keeps public objects addressed by a unique key such as
// "profile-photos/profile-1760517000000-1a2b3c4d.png".
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) (string, error)
	// TransformedURL is the public URL of key with a provider-side
	// transformation applied (resize, crop...).
	TransformedURL(key string, transformation string) (string, error)
	Delete(ctx context.Context, key string) error
}
