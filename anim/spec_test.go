package anim

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		ok   bool
	}{
		{
			name: "scalar to scalar",
			spec: Spec{Start: Scalar(0), End: Scalar(1), Duration: time.Second},
			ok:   true,
		},
		{
			name: "vector to vector",
			spec: Spec{Start: Vector(1, 0, 0), End: Vector(0, 0, 1), Duration: time.Second},
			ok:   true,
		},
		{
			name: "zero duration",
			spec: Spec{Start: Scalar(0), End: Scalar(1)},
			ok:   true,
		},
		{
			name: "scalar to vector",
			spec: Spec{Start: Scalar(0), End: Vector(0, 0, 1), Duration: time.Second},
		},
		{
			name: "vector length mismatch",
			spec: Spec{Start: Vector(0, 0), End: Vector(0, 0, 1), Duration: time.Second},
		},
		{
			name: "negative duration",
			spec: Spec{Start: Scalar(0), End: Scalar(1), Duration: -time.Second},
		},
		{
			name: "negative delay",
			spec: Spec{Start: Scalar(0), End: Scalar(1), Duration: time.Second, Delay: -time.Millisecond},
		},
		{
			name: "negative loop count",
			spec: Spec{Start: Scalar(0), End: Scalar(1), Duration: time.Second, LoopCount: -1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var se *SpecError
			assert.True(t, errors.As(err, &se))
		})
	}
}

// A malformed spec must be rejected before any scheduling happens.
func TestManagerRejectsBadSpec(t *testing.T) {
	m := NewManager(Config{}, nil)
	defer m.Stop()

	_, err := m.StartAnimation("bad", Spec{Start: Scalar(0), End: Vector(0, 0, 1), Duration: time.Second})
	require.Error(t, err)
	assert.Equal(t, 0, m.ActiveAnimations())
	assert.False(t, m.CancelAnimation("bad"))
}
