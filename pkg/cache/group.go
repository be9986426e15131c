package cache

import (
	"context"
	"errors"
	"sync"
)

// Refresher is the part of a Collection the group needs.
type Refresher interface {
	Refresh(ctx context.Context) error
	Invalidate()
}

// Group ties together every collection sharing the database namespace so a
// single write can invalidate them all.
type Group struct {
	mu      sync.Mutex
	members []Refresher
}

// Add registers collections with the group.
func (g *Group) Add(members ...Refresher) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.members = append(g.members, members...)
}

// Invalidate refetches every member now. Errors are joined rather than
// short-circuiting: one failed collection must not keep the rest stale.
func (g *Group) Invalidate(ctx context.Context) error {
	g.mu.Lock()
	members := append([]Refresher(nil), g.members...)
	g.mu.Unlock()

	var errs []error
	for _, m := range members {
		if err := m.Refresh(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
