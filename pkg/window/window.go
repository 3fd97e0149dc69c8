package window

import (
	"fmt"
	"strings"

	"github.com/dooshek/windowctl/pkg/geometry"
	"github.com/dooshek/windowctl/pkg/monitor"
)

// Window wraps one opaque platform window handle. All attribute reads go
// straight to the platform binding on every call; nothing but the handle
// and the assigned names is cached on the wrapper.
//
// Windows are created through System.Window so that one handle maps to one
// wrapper for the lifetime of the system.
type Window struct {
	handle int
	names  []string
	sys    *System
}

// Handle returns the platform handle this window wraps.
func (w *Window) Handle() int {
	return w.handle
}

// Name returns the window's canonical name: the first name assigned via
// SetName, or "" when none has been assigned.
func (w *Window) Name() string {
	if len(w.names) == 0 {
		return ""
	}
	return w.names[0]
}

// Names returns all names assigned to this window, in assignment order.
func (w *Window) Names() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

// SetName assigns a human-readable name to the window and registers it in
// the system's name registry. A window may carry any number of names; a
// name already mapped to another window is overwritten in the registry.
func (w *Window) SetName(name string) {
	for _, n := range w.names {
		if n == name {
			w.sys.registry.addName(name, w)
			return
		}
	}
	w.names = append(w.names, name)
	w.sys.registry.addName(name, w)
}

func (w *Window) String() string {
	args := append([]string{fmt.Sprintf("handle=%d", w.handle)}, w.names...)
	return fmt.Sprintf("Window(%s)", strings.Join(args, ", "))
}

// Title returns the window's title text.
func (w *Window) Title() (string, error) {
	return w.sys.platform.Title(w.handle)
}

// ClassName returns the window's class name.
func (w *Window) ClassName() (string, error) {
	return w.sys.platform.ClassName(w.handle)
}

// Executable returns the path of the executable owning the window.
func (w *Window) Executable() (string, error) {
	return w.sys.platform.Executable(w.handle)
}

// IsValid reports whether the handle still refers to an existing window.
func (w *Window) IsValid() (bool, error) {
	return w.sys.platform.IsValid(w.handle)
}

// IsEnabled reports whether the window accepts input.
func (w *Window) IsEnabled() (bool, error) {
	return w.sys.platform.IsEnabled(w.handle)
}

// IsVisible reports whether the window is currently visible. This may be
// indeterminable on some platforms; the binding returns a best-effort
// value.
func (w *Window) IsVisible() (bool, error) {
	return w.sys.platform.IsVisible(w.handle)
}

// IsMinimized reports whether the window is currently minimized.
func (w *Window) IsMinimized() (bool, error) {
	return w.sys.platform.IsMinimized(w.handle)
}

// IsMaximized reports whether the window is currently maximized.
func (w *Window) IsMaximized() (bool, error) {
	return w.sys.platform.IsMaximized(w.handle)
}

// Position returns the window's position and size in absolute screen
// coordinates.
func (w *Window) Position() (geometry.Rectangle, error) {
	return w.sys.platform.Position(w.handle)
}

// SetPosition moves and resizes the window immediately.
func (w *Window) SetPosition(rect geometry.Rectangle) error {
	return w.sys.platform.SetPosition(w.handle, rect)
}

// Minimize minimizes the window. The request is fire-and-forget: the OS is
// not asked whether it honored it.
func (w *Window) Minimize() error {
	return w.sys.platform.Minimize(w.handle)
}

// Maximize maximizes the window.
func (w *Window) Maximize() error {
	return w.sys.platform.Maximize(w.handle)
}

// Restore restores the window if it is minimized or maximized.
func (w *Window) Restore() error {
	return w.sys.platform.Restore(w.handle)
}

// SetForeground brings the window to the front and gives it input focus.
// A minimized window is restored first; native focus calls commonly refuse
// to act on minimized windows.
func (w *Window) SetForeground() error {
	minimized, err := w.IsMinimized()
	if err == nil && minimized {
		if err := w.Restore(); err != nil {
			return err
		}
	}
	return w.sys.platform.SetForeground(w.handle)
}

// Move moves the window to rect, optionally animating the transition with
// the named mover. An empty or unrecognized mover name degrades silently
// to an immediate SetPosition.
func (w *Window) Move(rect geometry.Rectangle, animate string) error {
	if animate == "" {
		return w.SetPosition(rect)
	}
	mover, ok := w.sys.Mover(animate)
	if !ok {
		return w.SetPosition(rect)
	}
	from, err := w.Position()
	if err != nil {
		return err
	}
	return mover.MoveWindow(w, from, rect)
}

// ContainingMonitor returns the monitor whose bounds contain the window's
// center point, falling back to the first monitor in the system's list.
func (w *Window) ContainingMonitor() (monitor.Monitor, error) {
	pos, err := w.Position()
	if err != nil {
		return monitor.Monitor{}, err
	}
	return monitor.Containing(pos, w.sys.Monitors())
}

// NormalizedPosition returns the window's position as fractions of its
// containing monitor's bounds (unit-square coordinates).
func (w *Window) NormalizedPosition() (geometry.Rectangle, error) {
	mon, err := w.ContainingMonitor()
	if err != nil {
		return geometry.Rectangle{}, err
	}
	pos, err := w.Position()
	if err != nil {
		return geometry.Rectangle{}, err
	}
	return pos.Renormalize(mon.Rect, geometry.Unit), nil
}

// SetNormalizedPosition places the window at a unit-square position on the
// given monitor. A nil monitor means the window's containing monitor.
func (w *Window) SetNormalizedPosition(rect geometry.Rectangle, mon *monitor.Monitor) error {
	if mon == nil {
		m, err := w.ContainingMonitor()
		if err != nil {
			return err
		}
		mon = &m
	}
	return w.SetPosition(rect.Renormalize(geometry.Unit, mon.Rect))
}
