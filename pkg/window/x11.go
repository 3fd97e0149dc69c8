//go:build linux

package window

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/dooshek/windowctl/pkg/geometry"
	"github.com/dooshek/windowctl/pkg/monitor"
)

const (
	stateHidden        = "_NET_WM_STATE_HIDDEN"
	stateMaximizedHorz = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateMaximizedVert = "_NET_WM_STATE_MAXIMIZED_VERT"
)

// x11Platform implements the capability contract against an EWMH-compliant
// X11 window manager.
type x11Platform struct {
	Unsupported
	xu *xgbutil.XUtil
}

func newPlatform() (Platform, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	return &x11Platform{xu: xu}, nil
}

func (p *x11Platform) Name() string { return "x11" }

func (p *x11Platform) Supports(c Capability) bool {
	// Everything except IsWindowEnabled, which has no X11 counterpart.
	return c != CapEnabled
}

func (p *x11Platform) Close() error {
	p.xu.Conn().Close()
	return nil
}

// Monitors enumerates the active XRandR monitors in CRTC order.
func (p *x11Platform) Monitors() ([]monitor.Monitor, error) {
	return monitor.Enumerate(p.xu)
}

func (p *x11Platform) ForegroundWindow() (int, error) {
	active, err := ewmh.ActiveWindowGet(p.xu)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	return int(active), nil
}

func (p *x11Platform) AllWindows() ([]int, error) {
	clients, err := ewmh.ClientListGet(p.xu)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}
	handles := make([]int, 0, len(clients))
	for _, c := range clients {
		handles = append(handles, int(c))
	}
	return handles, nil
}

func (p *x11Platform) Title(handle int) (string, error) {
	win := xproto.Window(handle)
	name, err := ewmh.WmNameGet(p.xu, win)
	if err != nil || name == "" {
		// Older clients only set the ICCCM property.
		name, err = icccm.WmNameGet(p.xu, win)
		if err != nil {
			return "", fmt.Errorf("failed to get window title: %w", err)
		}
	}
	return name, nil
}

func (p *x11Platform) ClassName(handle int) (string, error) {
	class, err := icccm.WmClassGet(p.xu, xproto.Window(handle))
	if err != nil {
		return "", fmt.Errorf("failed to get window class: %w", err)
	}
	return class.Class, nil
}

// Executable resolves the owning process via _NET_WM_PID and reads the
// process's exe link, falling back to the first cmdline argument when the
// link is unreadable (permission or stale pid).
func (p *x11Platform) Executable(handle int) (string, error) {
	pid, err := ewmh.WmPidGet(p.xu, xproto.Window(handle))
	if err != nil {
		return "", fmt.Errorf("failed to get window pid: %w", err)
	}

	path, err := os.Readlink(fmt.Sprintf("/proc/%d/exe", pid))
	if err == nil {
		return path, nil
	}

	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/cmdline", pid))
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable for pid %d: %w", pid, err)
	}
	for i, b := range data {
		if b == 0 {
			return string(data[:i]), nil
		}
	}
	return string(data), nil
}

func (p *x11Platform) IsValid(handle int) (bool, error) {
	_, err := xproto.GetWindowAttributes(p.xu.Conn(), xproto.Window(handle)).Reply()
	return err == nil, nil
}

func (p *x11Platform) IsVisible(handle int) (bool, error) {
	attrs, err := xproto.GetWindowAttributes(p.xu.Conn(), xproto.Window(handle)).Reply()
	if err != nil {
		return false, fmt.Errorf("failed to get window attributes: %w", err)
	}
	return attrs.MapState == xproto.MapStateViewable, nil
}

func (p *x11Platform) IsMinimized(handle int) (bool, error) {
	return p.hasStates(handle, stateHidden)
}

func (p *x11Platform) IsMaximized(handle int) (bool, error) {
	return p.hasStates(handle, stateMaximizedHorz, stateMaximizedVert)
}

// hasStates reports whether the window carries every one of the given
// _NET_WM_STATE atoms.
func (p *x11Platform) hasStates(handle int, wanted ...string) (bool, error) {
	states, err := ewmh.WmStateGet(p.xu, xproto.Window(handle))
	if err != nil {
		return false, fmt.Errorf("failed to get window state: %w", err)
	}
	for _, want := range wanted {
		found := false
		for _, s := range states {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

func (p *x11Platform) Position(handle int) (geometry.Rectangle, error) {
	win := xproto.Window(handle)
	geom, err := xproto.GetGeometry(p.xu.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return geometry.Rectangle{}, fmt.Errorf("failed to get window geometry: %w", err)
	}

	// Window coordinates are relative to the parent; translate to root.
	translate, err := xproto.TranslateCoordinates(p.xu.Conn(), win, p.xu.RootWin(), 0, 0).Reply()
	if err != nil {
		return geometry.Rectangle{}, fmt.Errorf("failed to translate window coordinates: %w", err)
	}

	return geometry.New(
		float64(translate.DstX), float64(translate.DstY),
		float64(geom.Width), float64(geom.Height),
	), nil
}

func (p *x11Platform) SetPosition(handle int, rect geometry.Rectangle) error {
	win := xproto.Window(handle)
	x, y := int(rect.X), int(rect.Y)
	w, h := int(rect.Width), int(rect.Height)

	// EWMH move-resize goes through the window manager; fall back to a
	// direct configure for WMs that ignore the client message.
	if err := ewmh.MoveresizeWindow(p.xu, win, x, y, w, h); err != nil {
		xwindow.New(p.xu, win).MoveResize(x, y, w, h)
	}
	return nil
}

func (p *x11Platform) Minimize(handle int) error {
	return ewmh.ClientEvent(p.xu, xproto.Window(handle), "WM_CHANGE_STATE", icccm.StateIconic)
}

func (p *x11Platform) Maximize(handle int) error {
	win := xproto.Window(handle)
	if err := ewmh.WmStateReq(p.xu, win, ewmh.StateAdd, stateMaximizedHorz); err != nil {
		return fmt.Errorf("failed to maximize window: %w", err)
	}
	return ewmh.WmStateReq(p.xu, win, ewmh.StateAdd, stateMaximizedVert)
}

func (p *x11Platform) Restore(handle int) error {
	win := xproto.Window(handle)

	// Mapping deiconifies a minimized window.
	xproto.MapWindow(p.xu.Conn(), win)

	if err := ewmh.WmStateReq(p.xu, win, ewmh.StateRemove, stateMaximizedHorz); err != nil {
		return fmt.Errorf("failed to restore window: %w", err)
	}
	return ewmh.WmStateReq(p.xu, win, ewmh.StateRemove, stateMaximizedVert)
}

func (p *x11Platform) SetForeground(handle int) error {
	return ewmh.ActiveWindowReq(p.xu, xproto.Window(handle))
}
