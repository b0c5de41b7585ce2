// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slideshow

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gallery/internal/collection"
	"github.com/pdiddy/gallery/internal/display"
	"github.com/pdiddy/gallery/pkg/types"
)

type notice struct {
	msg string
	sev display.Severity
}

// recorder is a display that remembers what it was asked to show.
type recorder struct {
	mu       sync.Mutex
	rendered []types.Painting
	notices  []notice
}

func (r *recorder) Render(p types.Painting) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rendered = append(r.rendered, p)
}

func (r *recorder) ReportProgress(int, int) {}

func (r *recorder) Notify(msg string, sev display.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice{msg, sev})
}

func (r *recorder) renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rendered)
}

func TestNextRendersFromStore(t *testing.T) {
	rec := &recorder{}
	store := collection.NewStore(collection.Seed()...)
	rot := New(store, rec, 0).WithRand(rand.New(rand.NewPCG(1, 1)))

	assert.Equal(t, DefaultInterval, rot.Interval())
	for i := 0; i < 10; i++ {
		require.True(t, rot.Next())
	}
	require.Len(t, rec.rendered, 10)
	for _, p := range rec.rendered {
		assert.True(t, collection.IsDuplicate(p, store.Snapshot()))
	}
	assert.Empty(t, rec.notices)
}

func TestNextOnEmptyStoreNotifies(t *testing.T) {
	rec := &recorder{}
	rot := New(collection.NewStore(), rec, time.Second)

	assert.False(t, rot.Next())
	assert.Empty(t, rec.rendered)
	assert.Equal(t, []notice{{EmptyNotice, display.Error}}, rec.notices)
}

func TestStartRendersOnEachTick(t *testing.T) {
	rec := &recorder{}
	rot := New(collection.NewStore(collection.Seed()...), rec, 10*time.Millisecond)

	require.True(t, rot.Start(context.Background()))
	assert.False(t, rot.Start(context.Background()), "second start is a no-op")
	assert.True(t, rot.Active())

	assert.Eventually(t, func() bool { return rec.renders() >= 3 }, time.Second, 5*time.Millisecond)

	require.True(t, rot.Stop())
	assert.False(t, rot.Active())
	stopped := rec.renders()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, stopped, rec.renders(), "no renders after Stop")
	assert.False(t, rot.Stop(), "second stop is a no-op")
}

func TestRotationEndsWithContext(t *testing.T) {
	rec := &recorder{}
	rot := New(collection.NewStore(collection.Seed()...), rec, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, rot.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !rot.Active() }, time.Second, 5*time.Millisecond)
	assert.False(t, rot.Stop())
	assert.True(t, rot.Start(context.Background()), "restart after context end")
	rot.Stop()
}

func TestToggle(t *testing.T) {
	rec := &recorder{}
	rot := New(collection.NewStore(collection.Seed()...), rec, time.Hour)

	assert.True(t, rot.Toggle(context.Background()))
	assert.True(t, rot.Active())
	assert.False(t, rot.Toggle(context.Background()))
	assert.False(t, rot.Active())

	require.Len(t, rec.notices, 2)
	assert.Equal(t, "auto-rotation started: a new painting every 1h0m0s", rec.notices[0].msg)
	assert.Equal(t, "auto-rotation stopped", rec.notices[1].msg)
}

func TestToggleUnderEndedContext(t *testing.T) {
	rec := &recorder{}
	rot := New(collection.NewStore(collection.Seed()...), rec, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, rot.Toggle(ctx))
	assert.False(t, rot.Active())
	assert.False(t, rot.Start(ctx))
	assert.Empty(t, rec.notices, "no start notice when rotation cannot run")
}

func TestRotationSeesAppendedPaintings(t *testing.T) {
	rec := &recorder{}
	store := collection.NewStore()
	rot := New(store, rec, 5*time.Millisecond)

	rot.Start(context.Background())
	defer rot.Stop()

	store.Append([]types.Painting{{Title: "Late Arrival", Artist: "X", ImageURL: "u", Description: "d"}})
	assert.Eventually(t, func() bool { return rec.renders() > 0 }, time.Second, 5*time.Millisecond)
}
