package service

import "context"

// ProfileCache holds the composed profile view, keyed by a generation that
// every Invalidate bumps. A view stored for an older generation is never
// served, so a reader that composed before a write cannot publish stale data.
type ProfileCache interface {
	// Get returns the current generation and, on a hit, decodes the view into dst.
	Get(ctx context.Context, dst any) (gen int64, hit bool, err error)
	// Set stores v for generation gen, as returned by the Get that missed.
	Set(ctx context.Context, gen int64, v any) error
	Invalidate(ctx context.Context) error
}
