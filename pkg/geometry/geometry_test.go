package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenter(t *testing.T) {
	r := New(100, 200, 400, 300)
	c := r.Center()
	if c.X != 300 || c.Y != 350 {
		t.Fatalf("expected center (300, 350), got (%v, %v)", c.X, c.Y)
	}
}

func TestContainsEdges(t *testing.T) {
	r := New(0, 0, 100, 100)

	assert.True(t, r.Contains(Point{X: 0, Y: 0}), "top-left edge is inclusive")
	assert.True(t, r.Contains(Point{X: 99.9, Y: 99.9}))
	assert.False(t, r.Contains(Point{X: 100, Y: 50}), "right edge is exclusive")
	assert.False(t, r.Contains(Point{X: 50, Y: 100}), "bottom edge is exclusive")
	assert.False(t, r.Contains(Point{X: -1, Y: 50}))
}

func TestContainsAdjacentMonitors(t *testing.T) {
	// Two side-by-side monitors: a point on the shared edge must resolve
	// to exactly one of them.
	left := New(0, 0, 1920, 1080)
	right := New(1920, 0, 1920, 1080)
	p := Point{X: 1920, Y: 540}

	assert.False(t, left.Contains(p))
	assert.True(t, right.Contains(p))
}

func TestRenormalizeToUnit(t *testing.T) {
	monitor := New(1920, 0, 1920, 1080)
	window := New(2400, 270, 960, 540)

	n := window.Renormalize(monitor, Unit)
	assert.InDelta(t, 0.25, n.X, 1e-9)
	assert.InDelta(t, 0.25, n.Y, 1e-9)
	assert.InDelta(t, 0.5, n.Width, 1e-9)
	assert.InDelta(t, 0.5, n.Height, 1e-9)
}

func TestRenormalizeRoundTrip(t *testing.T) {
	monitor := New(-1920, 100, 1920, 1200)
	window := New(-1000, 400, 640, 480)

	back := window.Renormalize(monitor, Unit).Renormalize(Unit, monitor)
	assert.InDelta(t, window.X, back.X, 1e-9)
	assert.InDelta(t, window.Y, back.Y, 1e-9)
	assert.InDelta(t, window.Width, back.Width, 1e-9)
	assert.InDelta(t, window.Height, back.Height, 1e-9)
}

func TestRenormalizeDegenerateBasis(t *testing.T) {
	r := New(10, 10, 20, 20)
	assert.Equal(t, r, r.Renormalize(Rectangle{}, Unit))
}
