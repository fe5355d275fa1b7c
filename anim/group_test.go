package anim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupStartJoinsAllMembers(t *testing.T) {
	g := NewGroup("g")
	members := make([]*Animation, 3)
	for i := range members {
		members[i] = newAnimation(Spec{
			Start:    Scalar(0),
			End:      Scalar(1),
			Duration: time.Second,
			Delay:    time.Duration(i) * 20 * time.Millisecond,
		})
		g.Add(members[i])
	}

	require.NoError(t, g.Start(context.Background()))
	assert.True(t, g.IsRunning())
	for _, a := range members {
		assert.Equal(t, Running, a.State())
	}
}

func TestGroupCancel(t *testing.T) {
	g := NewGroup("g")
	for i := 0; i < 3; i++ {
		g.Add(newAnimation(Spec{Start: Scalar(0), End: Scalar(1), Duration: time.Hour}))
	}
	require.NoError(t, g.Start(context.Background()))
	require.False(t, g.IsComplete())

	g.Cancel()
	assert.False(t, g.IsRunning())
	assert.True(t, g.IsComplete())
	for _, a := range g.Animations() {
		assert.Equal(t, Cancelled, a.State())
	}
}

func TestGroupCompletion(t *testing.T) {
	g := NewGroup("g")
	a := newAnimation(Spec{Start: Scalar(0), End: Scalar(1), Duration: time.Hour})
	b := newAnimation(Spec{Start: Scalar(0), End: Scalar(1), Duration: time.Hour})
	g.Add(a)
	g.Add(b)
	require.NoError(t, g.Start(context.Background()))

	a.Cancel()
	assert.False(t, g.IsComplete())
	b.Cancel()
	assert.True(t, g.IsComplete())
}

func TestEmptyGroupIsComplete(t *testing.T) {
	g := NewGroup("empty")
	assert.True(t, g.IsComplete())
}
