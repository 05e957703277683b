// Package charts describes dashboard charts as renderer-independent
// specs and manages renderer instances per dashboard slot.
package charts

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Kind identifies the visual form of a chart.
type Kind string

// Chart kinds.
const (
	KindDoughnut Kind = "doughnut"
	KindLine     Kind = "line"
	KindBar      Kind = "bar"
)

// Series is one named sequence of values, aligned with Spec.Labels.
type Series struct {
	Name   string
	Color  string
	Values []decimal.Decimal
}

// Spec is a complete, renderer-independent description of one chart.
// Colors applies per-label for single-series charts (doughnut); multi-series
// charts color per series instead.
type Spec struct {
	Kind   Kind
	Title  string
	Labels []string
	Colors []string
	Series []Series
}

// Renderer draws a chart into some surface. Release frees whatever the
// renderer holds so the slot can be drawn again.
type Renderer interface {
	Render(spec Spec) error
	Release() error
}

// NewRendererFunc constructs a fresh renderer for a slot.
type NewRendererFunc func(slot string) (Renderer, error)

// Registry tracks the live renderer per dashboard slot. Rendering into an
// occupied slot releases the previous instance first, so a slot never
// holds two live renderers.
type Registry struct {
	mu          sync.Mutex
	newRenderer NewRendererFunc
	active      map[string]Renderer
}

// NewRegistry returns a registry that builds renderers with newRenderer.
func NewRegistry(newRenderer NewRendererFunc) *Registry {
	return &Registry{
		newRenderer: newRenderer,
		active:      make(map[string]Renderer),
	}
}

// Render draws spec into the named slot, releasing any renderer already
// occupying it.
func (r *Registry) Render(slot string, spec Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.active[slot]; ok {
		delete(r.active, slot)
		if err := prev.Release(); err != nil {
			return fmt.Errorf("releasing chart slot %s: %w", slot, err)
		}
	}

	renderer, err := r.newRenderer(slot)
	if err != nil {
		return fmt.Errorf("creating renderer for slot %s: %w", slot, err)
	}
	if err := renderer.Render(spec); err != nil {
		_ = renderer.Release()
		return fmt.Errorf("rendering chart slot %s: %w", slot, err)
	}

	r.active[slot] = renderer
	return nil
}

// Close releases every live renderer.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for slot, renderer := range r.active {
		delete(r.active, slot)
		if err := renderer.Release(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("releasing chart slot %s: %w", slot, err)
		}
	}
	return firstErr
}
