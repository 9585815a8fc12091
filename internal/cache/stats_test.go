package cache

import (
	"context"
	"testing"

	"bloglist-service/internal/domain/blog"
)

var (
	_ blog.SummaryCache = (*RedisSummaryCache)(nil)
	_ blog.SummaryCache = Nop{}
)

func TestNopNeverHits(t *testing.T) {
	ctx := context.Background()
	var c Nop
	if err := c.Set(ctx, blog.Summary{TotalLikes: 7}); err != nil {
		t.Fatalf("set: %v", err)
	}
	s, ok, err := c.Get(ctx)
	if err != nil || ok || s != nil {
		t.Fatalf("expected miss, got %v %v %v", s, ok, err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
}
