package dbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dooshek/windowctl/pkg/window"
)

// stubPlatform is a minimal binding for exercising the exported methods
// without a display server or session bus.
type stubPlatform struct {
	window.Unsupported
	focused []int
}

func (p *stubPlatform) Name() string                    { return "stub" }
func (p *stubPlatform) Supports(window.Capability) bool { return true }

func (p *stubPlatform) IsMinimized(int) (bool, error) { return false, nil }

func (p *stubPlatform) SetForeground(handle int) error {
	p.focused = append(p.focused, handle)
	return nil
}

func newTestServer(t *testing.T) (*Server, *stubPlatform) {
	t.Helper()
	platform := &stubPlatform{}
	sys, err := window.New(window.WithPlatform(platform))
	require.NoError(t, err)
	return NewServer(sys), platform
}

func TestNameWindowMakesFocusNamedResolvable(t *testing.T) {
	srv, platform := newTestServer(t)

	require.Nil(t, srv.NameWindow(12, "editor"))
	require.Nil(t, srv.FocusNamed("editor"))

	assert.Equal(t, []int{12}, platform.focused)
}

func TestFocusNamedUnknownNameFails(t *testing.T) {
	srv, platform := newTestServer(t)

	dbusErr := srv.FocusNamed("editor")
	require.NotNil(t, dbusErr)
	assert.Empty(t, platform.focused)
}

func TestNameWindowRejectsEmptyName(t *testing.T) {
	srv, _ := newTestServer(t)

	assert.NotNil(t, srv.NameWindow(12, ""))
}

func TestNameWindowRejectsNegativeHandle(t *testing.T) {
	srv, _ := newTestServer(t)

	assert.NotNil(t, srv.NameWindow(-1, "editor"))
}

func TestNameWindowOverwriteRedirectsFocusNamed(t *testing.T) {
	srv, platform := newTestServer(t)

	require.Nil(t, srv.NameWindow(12, "browser"))
	require.Nil(t, srv.NameWindow(34, "browser"))
	require.Nil(t, srv.FocusNamed("browser"))

	assert.Equal(t, []int{34}, platform.focused)
}
