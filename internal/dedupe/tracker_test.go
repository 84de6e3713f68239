package dedupe

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestMemory_SeenAfterMark(t *testing.T) {
	m := NewMemory(10, time.Hour)
	ctx := context.Background()

	assert.Equal(t, false, m.Seen(ctx, "Acme Corp launches loyalty program"))
	m.Mark(ctx, "Acme Corp launches loyalty program")
	assert.Equal(t, true, m.Seen(ctx, "Acme Corp launches loyalty program"))
}

func TestMemory_NormalizesHeadlines(t *testing.T) {
	m := NewMemory(10, time.Hour)
	ctx := context.Background()

	m.Mark(ctx, "  Acme Corp Launches Loyalty Program ")
	assert.Equal(t, true, m.Seen(ctx, "acme corp launches loyalty program"))
}

func TestMemory_TTLExpiry(t *testing.T) {
	m := NewMemory(10, 30*time.Millisecond)
	ctx := context.Background()

	m.Mark(ctx, "short lived headline")
	assert.Equal(t, true, m.Seen(ctx, "short lived headline"))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, false, m.Seen(ctx, "short lived headline"))
}

func TestMemory_CapacityEviction(t *testing.T) {
	m := NewMemory(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		m.Mark(ctx, fmt.Sprintf("headline %d", i))
	}

	// The oldest entry falls out once capacity is exceeded.
	assert.Equal(t, false, m.Seen(ctx, "headline 0"))
	assert.Equal(t, true, m.Seen(ctx, "headline 1"))
	assert.Equal(t, true, m.Seen(ctx, "headline 3"))
}

func TestMemory_RemarkProtectsFromEviction(t *testing.T) {
	m := NewMemory(3, time.Hour)
	ctx := context.Background()

	m.Mark(ctx, "headline a")
	m.Mark(ctx, "headline b")
	m.Mark(ctx, "headline c")

	// Re-marking a moves it to the back, so b is now the oldest.
	m.Mark(ctx, "headline a")
	m.Mark(ctx, "headline d")

	assert.Equal(t, true, m.Seen(ctx, "headline a"))
	assert.Equal(t, false, m.Seen(ctx, "headline b"))
	assert.Equal(t, true, m.Seen(ctx, "headline c"))
	assert.Equal(t, true, m.Seen(ctx, "headline d"))
}
