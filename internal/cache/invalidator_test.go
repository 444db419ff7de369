package cache

import (
	"context"
	"testing"
	"time"
)

// recordingStore captures the keys touched by the invalidator.
type recordingStore struct {
	deleted  []string
	patterns []string
}

func (s *recordingStore) Get(ctx context.Context, key string, dest interface{}) bool { return false }
func (s *recordingStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
}
func (s *recordingStore) Delete(ctx context.Context, key string) {
	s.deleted = append(s.deleted, key)
}
func (s *recordingStore) DeletePattern(ctx context.Context, pattern string) {
	s.patterns = append(s.patterns, pattern)
}

func TestBriefKey(t *testing.T) {
	if got := BriefKey("abc-123"); got != "briefs:abc-123" {
		t.Errorf("BriefKey = %q", got)
	}
}

func TestListKey(t *testing.T) {
	if got := ListKey("draft:0:100"); got != "briefs:list:draft:0:100" {
		t.Errorf("ListKey = %q", got)
	}
}

func TestInvalidateEvictsBriefAndListEntries(t *testing.T) {
	store := &recordingStore{}
	inv := NewInvalidator(store)

	inv.Invalidate(context.Background(), "abc-123")

	if len(store.deleted) != 1 || store.deleted[0] != "briefs:abc-123" {
		t.Errorf("deleted = %v", store.deleted)
	}
	if len(store.patterns) != 1 || store.patterns[0] != "briefs:list:*" {
		t.Errorf("patterns = %v", store.patterns)
	}
}
