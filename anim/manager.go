package anim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Callback receives a computed value for one (target, property) pair. It is
// invoked from the scheduler goroutine up to the tick rate, so it must be
// fast or hand work off without blocking.
type Callback func(targetID, property string, value Value)

type callbackKey struct {
	targetID string
	property string
}

// Manager owns the animation and group registries, the callback directory
// and the scheduler loop that drives them. Construct one explicitly with
// NewManager and control its lifetime with Start and Stop; there is no
// package-level instance.
type Manager struct {
	cfg Config
	log *zap.Logger

	mu         sync.Mutex
	animations map[string]*Animation
	order      []string
	groups     map[string]*Group
	callbacks  map[callbackKey]Callback
	seq        uint64
	running    bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager creates an instance of a Manager. A nil logger disables
// logging.
func NewManager(cfg Config, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := new(Manager)
	m.cfg = cfg
	m.log = log
	m.animations = make(map[string]*Animation)
	m.groups = make(map[string]*Group)
	m.callbacks = make(map[callbackKey]Callback)
	m.ctx, m.cancel = context.WithCancel(context.Background())
	return m
}

// Start launches the scheduler loop. Calling Start on a running manager is
// a no-op.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.running = true
	m.done = make(chan struct{})
	go m.run()
	m.log.Info("animation manager started", zap.Int("tickRate", m.cfg.tickRate()))
}

// Stop cancels every tracked animation and group, then waits for the
// scheduler loop to exit. No callback fires after Stop returns. The manager
// cannot be restarted.
func (m *Manager) Stop() {
	m.mu.Lock()
	wasRunning := m.running
	m.running = false
	done := m.done
	anims := make([]*Animation, 0, len(m.animations))
	for _, a := range m.animations {
		anims = append(anims, a)
	}
	groups := make([]*Group, 0, len(m.groups))
	for _, g := range m.groups {
		groups = append(groups, g)
	}
	m.animations = make(map[string]*Animation)
	m.order = nil
	m.groups = make(map[string]*Group)
	m.mu.Unlock()

	for _, a := range anims {
		a.Cancel()
	}
	for _, g := range groups {
		g.Cancel()
	}

	m.cancel()
	if wasRunning && done != nil {
		<-done
	}
	m.log.Info("animation manager stopped")
}

// RegisterCallback installs the handler for one (target, property) pair,
// replacing any previous handler for that exact pair.
func (m *Manager) RegisterCallback(targetID, property string, cb Callback) {
	m.mu.Lock()
	m.callbacks[callbackKey{targetID, property}] = cb
	m.mu.Unlock()
}

func (m *Manager) callback(targetID, property string) Callback {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callbacks[callbackKey{targetID, property}]
}

// nextID builds a collision-free animation or group id from a monotonic
// counter and the wall clock.
func (m *Manager) nextID(prefix string) string {
	m.mu.Lock()
	m.seq++
	n := m.seq
	m.mu.Unlock()
	return fmt.Sprintf("%s_%d_%d", prefix, n, time.Now().UnixNano())
}

// CreateAnimation validates the spec and registers a new Animation under
// the given id without starting it. Registering over an existing id cancels
// the previous animation.
func (m *Manager) CreateAnimation(id string, spec Spec) (*Animation, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	a := newAnimation(spec)
	m.mu.Lock()
	if old, ok := m.animations[id]; ok {
		m.log.Warn("replacing animation", zap.String("id", id))
		defer old.Cancel()
	} else {
		m.order = append(m.order, id)
	}
	m.animations[id] = a
	m.mu.Unlock()
	return a, nil
}

// StartAnimation registers the spec under id and begins its delay/run
// lifecycle in the background. An empty id is auto-generated. The returned
// id addresses the animation for later cancellation.
func (m *Manager) StartAnimation(id string, spec Spec) (string, error) {
	if id == "" {
		id = m.nextID("anim")
	}
	a, err := m.CreateAnimation(id, spec)
	if err != nil {
		return "", err
	}
	go a.Start(m.ctx)
	return id, nil
}

// CancelAnimation cancels and deregisters an animation. It returns false if
// the id is not tracked; that is not an error.
func (m *Manager) CancelAnimation(id string) bool {
	m.mu.Lock()
	a, ok := m.animations[id]
	if ok {
		m.removeLocked(id)
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	a.Cancel()
	return true
}

// CreateAnimationGroup registers a new empty group under the given name.
func (m *Manager) CreateAnimationGroup(name string) *Group {
	g := NewGroup(name)
	m.mu.Lock()
	m.groups[name] = g
	m.mu.Unlock()
	return g
}

// StartAnimationGroup starts the named group, blocking until every member
// has entered Running. It returns false for an unknown name.
func (m *Manager) StartAnimationGroup(name string) bool {
	m.mu.Lock()
	g, ok := m.groups[name]
	m.mu.Unlock()
	if !ok {
		return false
	}
	if err := g.Start(m.ctx); err != nil {
		m.log.Warn("group start interrupted", zap.String("group", name), zap.Error(err))
	}
	return true
}

// CancelAnimationGroup cancels the named group, deregisters it and drops
// its members from the animation registry. It returns false for an unknown
// name.
func (m *Manager) CancelAnimationGroup(name string) bool {
	m.mu.Lock()
	g, ok := m.groups[name]
	if ok {
		delete(m.groups, name)
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	g.Cancel()

	m.mu.Lock()
	for id, a := range m.animations {
		if a.IsComplete() {
			m.removeLocked(id)
		}
	}
	m.mu.Unlock()
	return true
}

// ActiveAnimations returns the number of tracked animations.
func (m *Manager) ActiveAnimations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.animations)
}

// removeLocked deregisters one animation id; the caller holds m.mu.
func (m *Manager) removeLocked(id string) {
	delete(m.animations, id)
	for i, other := range m.order {
		if other == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// run is the scheduler loop. Each pass dispatches one tick, then sleeps for
// whatever remains of the period. Ticks that overrun the period are not
// compensated for; under sustained overload the cadence drifts.
func (m *Manager) run() {
	defer close(m.done)
	period := time.Second / time.Duration(m.cfg.tickRate())
	for {
		start := time.Now()
		m.tick()

		wait := period - time.Since(start)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-m.ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// tick advances every Running animation once: compute progress, compute and
// store the value, dispatch it, then handle looping and completion.
// Completed animations are deregistered only after the whole dispatch pass.
func (m *Manager) tick() {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("scheduler fault", zap.Any("panic", r))
		}
	}()

	m.mu.Lock()
	ids := make([]string, len(m.order))
	copy(ids, m.order)
	anims := make([]*Animation, len(ids))
	for i, id := range ids {
		anims[i] = m.animations[id]
	}
	m.mu.Unlock()

	var finished []string
	for i, a := range anims {
		if a == nil {
			continue
		}
		if a.State() != Running {
			// Sweep animations cancelled outside the loop.
			if a.IsComplete() {
				finished = append(finished, ids[i])
			}
			continue
		}

		progress := a.Progress()
		value := a.ValueAt(progress)
		a.setCurrent(value)

		spec := a.Spec()
		if cb := m.callback(spec.TargetID, spec.Property); cb != nil {
			m.invoke(cb, spec.TargetID, spec.Property, value)
		}

		if progress >= 1 {
			if a.ShouldLoop() {
				a.ResetForLoop()
				continue
			}
			a.complete()
			if spec.OnComplete != nil {
				m.invokeComplete(spec.OnComplete, spec.TargetID, spec.Property)
			}
			finished = append(finished, ids[i])
		}
	}

	if len(finished) > 0 {
		m.mu.Lock()
		for _, id := range finished {
			m.removeLocked(id)
		}
		m.mu.Unlock()
	}
}

// invoke runs a value callback, containing any panic so one bad handler
// cannot break the tick or other animations.
func (m *Manager) invoke(cb Callback, targetID, property string, value Value) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("animation callback panicked",
				zap.String("target", targetID),
				zap.String("property", property),
				zap.Any("panic", r))
		}
	}()
	cb(targetID, property, value)
}

// invokeComplete runs a completion action under the same containment.
func (m *Manager) invokeComplete(fn func(), targetID, property string) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("completion callback panicked",
				zap.String("target", targetID),
				zap.String("property", property),
				zap.Any("panic", r))
		}
	}()
	fn()
}
