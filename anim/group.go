package anim

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// A Group is a named, ordered collection of Animations started and
// cancelled together. Membership is fixed before Start; the Group owns its
// members for lifecycle purposes but the Manager's registry still drives
// their ticks.
type Group struct {
	name string

	mu         sync.Mutex
	animations []*Animation
	running    bool
}

// NewGroup creates an instance of a Group.
func NewGroup(name string) *Group {
	g := new(Group)
	g.name = name
	return g
}

// Name returns the group's registry name.
func (g *Group) Name() string {
	return g.name
}

// Add appends an animation to the group. It must be called before Start.
func (g *Group) Add(a *Animation) {
	g.mu.Lock()
	g.animations = append(g.animations, a)
	g.mu.Unlock()
}

// Start fans out Start on every member concurrently and returns once all of
// them have entered Running (or failed to). Member delays elapse inside the
// fan-out, so a group of delayed animations blocks until the longest delay
// has passed.
func (g *Group) Start(ctx context.Context) error {
	g.mu.Lock()
	g.running = true
	anims := make([]*Animation, len(g.animations))
	copy(anims, g.animations)
	g.mu.Unlock()

	var eg errgroup.Group
	for _, a := range anims {
		a := a
		eg.Go(func() error {
			return a.Start(ctx)
		})
	}
	return eg.Wait()
}

// Cancel fans out Cancel on every member and joins before returning.
func (g *Group) Cancel() {
	g.mu.Lock()
	g.running = false
	anims := make([]*Animation, len(g.animations))
	copy(anims, g.animations)
	g.mu.Unlock()

	var eg errgroup.Group
	for _, a := range anims {
		a := a
		eg.Go(func() error {
			a.Cancel()
			return nil
		})
	}
	eg.Wait()
}

// IsRunning reports whether the group has been started and not cancelled.
func (g *Group) IsRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// Animations returns the group's members in insertion order.
func (g *Group) Animations() []*Animation {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Animation, len(g.animations))
	copy(out, g.animations)
	return out
}

// IsComplete reports whether every member has reached a terminal state.
func (g *Group) IsComplete() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, a := range g.animations {
		if !a.IsComplete() {
			return false
		}
	}
	return true
}
