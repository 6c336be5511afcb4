package framework

import (
	"fmt"

	"github.com/lance13c/testforge/internal/scenario"
)

// Registry is the closed catalog of target frameworks. It is built once,
// never mutated, and shared read-only across compilations; adding a target
// is a code change, not configuration.
type Registry struct {
	order []string
	byID  map[string]*Descriptor
}

// NewRegistry builds the registry with every supported target.
func NewRegistry() *Registry {
	descriptors := targets()
	r := &Registry{
		order: make([]string, 0, len(descriptors)),
		byID:  make(map[string]*Descriptor, len(descriptors)),
	}
	for i := range descriptors {
		d := &descriptors[i]
		r.order = append(r.order, d.ID)
		r.byID[d.ID] = d
	}
	return r
}

// Get returns the descriptor for a framework id.
func (r *Registry) Get(id string) (*Descriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown framework: %s", id)
	}
	return d, nil
}

// List returns all descriptors in registration order.
func (r *Registry) List() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// ByKind returns the descriptors driving one test kind, in registration
// order.
func (r *Registry) ByKind(kind scenario.TestKind) []*Descriptor {
	var out []*Descriptor
	for _, id := range r.order {
		if r.byID[id].Kind == kind {
			out = append(out, r.byID[id])
		}
	}
	return out
}

// DefaultForKind returns the canonical target for a test kind: the dynamic
// web, mobile and api targets respectively.
func (r *Registry) DefaultForKind(kind scenario.TestKind) *Descriptor {
	switch kind {
	case scenario.KindMobile:
		return r.byID["appium"]
	case scenario.KindAPI:
		return r.byID["requests"]
	default:
		return r.byID["selenium"]
	}
}
