// Package imageref turns stored image references into URLs clients can load.
package imageref

import (
	"context"
	"log/slog"
)

// Resolver maps a stored image reference (object key or absolute URL) to a
// loadable URL.
type Resolver interface {
	ImageURL(ctx context.Context, ref string) (string, error)
}

// Resolve returns the loadable URL for ref. A nil resolver, an empty ref or a
// resolver failure all yield ref unchanged; failures are logged.
func Resolve(ctx context.Context, r Resolver, ref string) string {
	if r == nil || ref == "" {
		return ref
	}
	u, err := r.ImageURL(ctx, ref)
	if err != nil {
		slog.WarnContext(ctx, "could not resolve image", "ref", ref, "err", err)
		return ref
	}
	return u
}
