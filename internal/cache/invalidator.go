package cache

import (
	"context"
	"fmt"
	"time"
)

// Key scheme. Single-brief entries live under briefs:{id}; list views
// under briefs:list:{...}.
const (
	briefKeyFormat  = "briefs:%s"
	briefListPrefix = "briefs:list:"
)

// DefaultTTL is applied to cached brief reads.
const DefaultTTL = time.Hour

// BriefKey returns the cache key for a single brief.
func BriefKey(briefID string) string {
	return fmt.Sprintf(briefKeyFormat, briefID)
}

// ListKey returns the cache key for a list view with the given
// filter discriminator.
func ListKey(discriminator string) string {
	return briefListPrefix + discriminator
}

// Invalidator evicts stale brief entries on mutation. Eviction is
// best-effort by construction: the underlying Store swallows backend
// errors, so invalidation never blocks or fails the mutation that
// triggered it.
type Invalidator struct {
	store Store
}

// NewInvalidator creates a new invalidator over the given store.
func NewInvalidator(store Store) *Invalidator {
	return &Invalidator{store: store}
}

// Invalidate removes the single-brief entry and every list entry
// that could contain a stale view of the brief.
func (i *Invalidator) Invalidate(ctx context.Context, briefID string) {
	i.store.Delete(ctx, BriefKey(briefID))
	i.store.DeletePattern(ctx, briefListPrefix+"*")
}
