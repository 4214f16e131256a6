package hero

import (
	"context"
	"sync"
	"time"

	"github.com/probikes/probikes-backend/internal/product"
)

// DefaultInterval matches the storefront's 5-second hero rotation.
const DefaultInterval = 5 * time.Second

// Rotator cycles through the featured slides on a single owned ticker.
// Run starts the ticker and stops it when the context ends, so a shutdown
// never leaks the timer. Manual Next/Prev share the same index; the ticker
// keeps its own cadence rather than rescheduling on every interaction.
type Rotator struct {
	mu       sync.Mutex
	slides   []product.Product
	index    int
	interval time.Duration
}

// NewRotator creates a Rotator over the given slides.
// A non-positive interval falls back to the default.
func NewRotator(slides []product.Product, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{
		slides:   slides,
		interval: interval,
	}
}

// Run advances the rotation until the context is cancelled. It blocks, so
// callers start it on its own goroutine.
func (r *Rotator) Run(ctx context.Context) {
	if len(r.slides) < 2 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Next()
		}
	}
}

// Current returns the active slide and its position.
func (r *Rotator) Current() (product.Product, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slides) == 0 {
		return product.Product{}, 0
	}
	return r.slides[r.index], r.index
}

// Len reports the number of slides.
func (r *Rotator) Len() int {
	return len(r.slides)
}

// Next advances to the following slide, wrapping at the end.
func (r *Rotator) Next() (product.Product, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slides) == 0 {
		return product.Product{}, 0
	}
	r.index = (r.index + 1) % len(r.slides)
	return r.slides[r.index], r.index
}

// Prev steps back to the previous slide, wrapping at the start.
func (r *Rotator) Prev() (product.Product, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slides) == 0 {
		return product.Product{}, 0
	}
	r.index = (r.index - 1 + len(r.slides)) % len(r.slides)
	return r.slides[r.index], r.index
}
