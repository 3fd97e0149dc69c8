package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dooshek/windowctl/pkg/geometry"
)

func TestStepMoverEndsAtTarget(t *testing.T) {
	platform := newFakePlatform()
	sys := newTestSystem(t, platform)

	from := geometry.New(0, 0, 100, 100)
	platform.positions[1] = from

	sys.RegisterMover("test", StepMover{Duration: 4 * time.Millisecond, Steps: 4})

	w, _ := sys.Window(1)
	target := geometry.New(400, 200, 200, 100)
	require.NoError(t, w.Move(target, "test"))

	assert.Equal(t, target, platform.positions[1])
}

func TestStepMoverIssuesOneSetPerStep(t *testing.T) {
	platform := newFakePlatform()
	sys := newTestSystem(t, platform)
	platform.positions[1] = geometry.New(0, 0, 100, 100)

	sys.RegisterMover("test", StepMover{Duration: 4 * time.Millisecond, Steps: 5})

	w, _ := sys.Window(1)
	require.NoError(t, w.Move(geometry.New(100, 0, 100, 100), "test"))

	sets := 0
	for _, call := range platform.calls {
		if call == "SetPosition" {
			sets++
		}
	}
	assert.Equal(t, 5, sets)
}

func TestBuiltinMoversRegistered(t *testing.T) {
	sys := newTestSystem(t, newFakePlatform())

	_, ok := sys.Mover("linear")
	assert.True(t, ok)
	_, ok = sys.Mover("smooth")
	assert.True(t, ok)
	_, ok = sys.Mover("bounce")
	assert.False(t, ok)
}

func TestSmoothstepEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, smoothstep(0))
	assert.Equal(t, 1.0, smoothstep(1))
	assert.InDelta(t, 0.5, smoothstep(0.5), 1e-9)
}
