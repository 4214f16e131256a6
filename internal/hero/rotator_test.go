package hero

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probikes/probikes-backend/internal/product"
)

func testSlides() []product.Product {
	return []product.Product{
		{ID: 1, Name: "first"},
		{ID: 2, Name: "second"},
		{ID: 3, Name: "third"},
	}
}

func TestManualNavigationWraps(t *testing.T) {
	r := NewRotator(testSlides(), DefaultInterval)

	slide, idx := r.Current()
	assert.Equal(t, 0, idx)
	assert.Equal(t, "first", slide.Name)

	_, idx = r.Next()
	assert.Equal(t, 1, idx)
	_, idx = r.Next()
	assert.Equal(t, 2, idx)

	// Wrap forward past the end.
	slide, idx = r.Next()
	assert.Equal(t, 0, idx)
	assert.Equal(t, "first", slide.Name)

	// Wrap backward past the start.
	slide, idx = r.Prev()
	assert.Equal(t, 2, idx)
	assert.Equal(t, "third", slide.Name)
}

func TestRunAdvancesAndStopsWithContext(t *testing.T) {
	r := NewRotator(testSlides(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, idx := r.Current()
		return idx != 0
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("rotator did not stop after context cancellation")
	}

	// No further advancement once stopped.
	_, idx := r.Current()
	time.Sleep(30 * time.Millisecond)
	_, after := r.Current()
	assert.Equal(t, idx, after)
}

func TestRunWithSingleSlideIsANoOp(t *testing.T) {
	r := NewRotator([]product.Product{{ID: 1}}, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	r.Run(ctx) // returns immediately, nothing to rotate

	_, idx := r.Current()
	assert.Equal(t, 0, idx)
}
