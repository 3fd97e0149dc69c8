package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dooshek/windowctl/pkg/geometry"
	"github.com/dooshek/windowctl/pkg/monitor"
)

// fakePlatform records every native call so tests can assert on call
// ordering and arguments.
type fakePlatform struct {
	Unsupported
	foreground int
	all        []int
	positions  map[int]geometry.Rectangle
	minimized  map[int]bool
	calls      []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		positions: make(map[int]geometry.Rectangle),
		minimized: make(map[int]bool),
	}
}

func (p *fakePlatform) Name() string             { return "fake" }
func (p *fakePlatform) Supports(Capability) bool { return true }

func (p *fakePlatform) ForegroundWindow() (int, error) {
	p.calls = append(p.calls, "ForegroundWindow")
	return p.foreground, nil
}

func (p *fakePlatform) AllWindows() ([]int, error) {
	p.calls = append(p.calls, "AllWindows")
	return p.all, nil
}

func (p *fakePlatform) IsMinimized(handle int) (bool, error) {
	p.calls = append(p.calls, "IsMinimized")
	return p.minimized[handle], nil
}

func (p *fakePlatform) Position(handle int) (geometry.Rectangle, error) {
	p.calls = append(p.calls, "Position")
	return p.positions[handle], nil
}

func (p *fakePlatform) SetPosition(handle int, rect geometry.Rectangle) error {
	p.calls = append(p.calls, "SetPosition")
	p.positions[handle] = rect
	return nil
}

func (p *fakePlatform) Restore(handle int) error {
	p.calls = append(p.calls, "Restore")
	p.minimized[handle] = false
	return nil
}

func (p *fakePlatform) SetForeground(handle int) error {
	p.calls = append(p.calls, "SetForeground")
	p.foreground = handle
	return nil
}

func newTestSystem(t *testing.T, platform Platform) *System {
	t.Helper()
	sys, err := New(WithPlatform(platform))
	require.NoError(t, err)
	return sys
}

func TestWindowHandleRoundTrip(t *testing.T) {
	sys := newTestSystem(t, newFakePlatform())

	for _, handle := range []int{0, 1, 42, 1 << 30} {
		w, err := sys.Window(handle)
		require.NoError(t, err)
		assert.Equal(t, handle, w.Handle())
	}
}

func TestNegativeHandleRejected(t *testing.T) {
	sys := newTestSystem(t, newFakePlatform())

	_, err := sys.Window(-1)
	assert.ErrorIs(t, err, ErrInvalidHandle)
	assert.Equal(t, 0, sys.Registry().Len())
}

func TestSetNameRegistersWindow(t *testing.T) {
	sys := newTestSystem(t, newFakePlatform())

	w, err := sys.Window(7)
	require.NoError(t, err)
	w.SetName("editor")

	got, ok := sys.Named("editor")
	require.True(t, ok)
	assert.Same(t, w, got)
}

func TestFirstNameIsCanonical(t *testing.T) {
	sys := newTestSystem(t, newFakePlatform())

	w, _ := sys.Window(7)
	w.SetName("editor")
	w.SetName("code")

	assert.Equal(t, "editor", w.Name())
	assert.Equal(t, []string{"editor", "code"}, w.Names())

	// Both names resolve to the same window.
	byEditor, _ := sys.Named("editor")
	byCode, _ := sys.Named("code")
	assert.Same(t, byEditor, byCode)
}

func TestDuplicateNameOverwritesRegistryEntry(t *testing.T) {
	sys := newTestSystem(t, newFakePlatform())

	first, _ := sys.Window(1)
	second, _ := sys.Window(2)
	first.SetName("browser")
	second.SetName("browser")

	got, ok := sys.Named("browser")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestForegroundReusesRegisteredWrapper(t *testing.T) {
	platform := newFakePlatform()
	platform.foreground = 99
	sys := newTestSystem(t, platform)

	first, err := sys.Foreground()
	require.NoError(t, err)
	second, err := sys.Foreground()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestEnumerationSharesIdentityWithForeground(t *testing.T) {
	platform := newFakePlatform()
	platform.foreground = 5
	platform.all = []int{3, 5, 8}
	sys := newTestSystem(t, platform)

	fg, err := sys.Foreground()
	require.NoError(t, err)

	windows, err := sys.Windows()
	require.NoError(t, err)
	require.Len(t, windows, 3)
	assert.Same(t, fg, windows[1])
}

func TestMoveWithoutAnimatorSetsPositionDirectly(t *testing.T) {
	platform := newFakePlatform()
	sys := newTestSystem(t, platform)

	w, _ := sys.Window(1)
	target := geometry.New(10, 20, 300, 400)
	require.NoError(t, w.Move(target, ""))

	assert.Equal(t, []string{"SetPosition"}, platform.calls)
	assert.Equal(t, target, platform.positions[1])
}

func TestMoveUnknownAnimatorFallsBackSilently(t *testing.T) {
	platform := newFakePlatform()
	sys := newTestSystem(t, platform)

	w, _ := sys.Window(1)
	target := geometry.New(10, 20, 300, 400)
	require.NoError(t, w.Move(target, "no-such-mover"))

	assert.Equal(t, []string{"SetPosition"}, platform.calls)
	assert.Equal(t, target, platform.positions[1])
}

func TestMoveKnownAnimatorDelegates(t *testing.T) {
	platform := newFakePlatform()
	sys := newTestSystem(t, platform)

	current := geometry.New(0, 0, 100, 100)
	platform.positions[1] = current

	var gotFrom, gotTo geometry.Rectangle
	sys.RegisterMover("teleport", MoverFunc(func(w *Window, from, to geometry.Rectangle) error {
		gotFrom, gotTo = from, to
		return nil
	}))

	w, _ := sys.Window(1)
	target := geometry.New(50, 60, 200, 200)
	require.NoError(t, w.Move(target, "teleport"))

	assert.Equal(t, current, gotFrom)
	assert.Equal(t, target, gotTo)
	// The mover owns the transition: no direct SetPosition from Move.
	assert.NotContains(t, platform.calls, "SetPosition")
}

func TestSetForegroundRestoresMinimizedWindowFirst(t *testing.T) {
	platform := newFakePlatform()
	platform.minimized[4] = true
	sys := newTestSystem(t, platform)

	w, _ := sys.Window(4)
	require.NoError(t, w.SetForeground())

	assert.Equal(t, []string{"IsMinimized", "Restore", "SetForeground"}, platform.calls)
}

func TestSetForegroundSkipsRestoreWhenNotMinimized(t *testing.T) {
	platform := newFakePlatform()
	sys := newTestSystem(t, platform)

	w, _ := sys.Window(4)
	require.NoError(t, w.SetForeground())

	assert.Equal(t, []string{"IsMinimized", "SetForeground"}, platform.calls)
}

func TestContainingMonitor(t *testing.T) {
	platform := newFakePlatform()
	platform.positions[1] = geometry.New(2000, 100, 800, 600)

	monitors := []monitor.Monitor{
		{Handle: 0, Rect: geometry.New(0, 0, 1920, 1080)},
		{Handle: 1, Rect: geometry.New(1920, 0, 1920, 1080)},
	}
	sys, err := New(WithPlatform(platform), WithMonitors(monitors))
	require.NoError(t, err)

	w, _ := sys.Window(1)
	mon, err := w.ContainingMonitor()
	require.NoError(t, err)
	assert.Equal(t, 1, mon.Handle)
}

func TestNormalizedPositionRoundTrip(t *testing.T) {
	platform := newFakePlatform()
	platform.positions[1] = geometry.New(2400, 270, 960, 540)

	monitors := []monitor.Monitor{
		{Handle: 0, Rect: geometry.New(1920, 0, 1920, 1080)},
	}
	sys, err := New(WithPlatform(platform), WithMonitors(monitors))
	require.NoError(t, err)

	w, _ := sys.Window(1)
	norm, err := w.NormalizedPosition()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, norm.X, 1e-9)
	assert.InDelta(t, 0.25, norm.Y, 1e-9)
	assert.InDelta(t, 0.5, norm.Width, 1e-9)
	assert.InDelta(t, 0.5, norm.Height, 1e-9)

	require.NoError(t, w.SetNormalizedPosition(norm, nil))
	got := platform.positions[1]
	assert.InDelta(t, 2400, got.X, 1e-9)
	assert.InDelta(t, 270, got.Y, 1e-9)
}

func TestCloseClearsRegistry(t *testing.T) {
	sys := newTestSystem(t, newFakePlatform())

	w, _ := sys.Window(1)
	w.SetName("editor")
	require.NoError(t, sys.Close())

	assert.Equal(t, 0, sys.Registry().Len())
	_, ok := sys.Named("editor")
	assert.False(t, ok)
}

func TestUnsupportedCapabilitiesReportNotSupported(t *testing.T) {
	sys := newTestSystem(t, nullTestPlatform{})

	w, _ := sys.Window(1)
	_, err := w.Title()
	assert.ErrorIs(t, err, ErrNotSupported)
	_, err = w.IsMaximized()
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.ErrorIs(t, w.Minimize(), ErrNotSupported)
	assert.False(t, sys.Platform().Supports(CapTitle))
}

// nullTestPlatform leaves every capability unimplemented.
type nullTestPlatform struct {
	Unsupported
}
