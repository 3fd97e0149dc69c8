package window

import (
	"fmt"
	"sync"

	"github.com/dooshek/windowctl/pkg/monitor"
)

// monitorProvider is implemented by platform bindings that can enumerate
// the machine's monitors themselves.
type monitorProvider interface {
	Monitors() ([]monitor.Monitor, error)
}

// closer is implemented by platform bindings that hold a connection.
type closer interface {
	Close() error
}

// System ties a platform binding to the window registry, the ordered
// monitor list, and the named mover registry. One System is created at
// startup and owns all Window wrappers handed out during its lifetime.
type System struct {
	platform Platform
	registry *Registry
	monitors []monitor.Monitor

	moverMu sync.RWMutex
	movers  map[string]Mover
}

// Option configures a System.
type Option func(*System)

// WithPlatform overrides the platform binding chosen for the current OS.
func WithPlatform(p Platform) Option {
	return func(s *System) { s.platform = p }
}

// WithMonitors supplies the ordered monitor list. The order is the
// priority order used when resolving a window's containing monitor.
func WithMonitors(monitors []monitor.Monitor) Option {
	return func(s *System) { s.monitors = monitors }
}

// WithMover registers a named window mover in addition to the built-in
// ones.
func WithMover(name string, m Mover) Option {
	return func(s *System) { s.movers[name] = m }
}

// New creates a System for the current operating system. When no monitor
// list is supplied and the platform binding can enumerate monitors, the
// enumerated list is used.
func New(opts ...Option) (*System, error) {
	s := &System{
		registry: NewRegistry(),
		movers:   builtinMovers(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.platform == nil {
		p, err := newPlatform()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize platform binding: %w", err)
		}
		s.platform = p
	}

	if s.monitors == nil {
		if mp, ok := s.platform.(monitorProvider); ok {
			monitors, err := mp.Monitors()
			if err != nil {
				return nil, fmt.Errorf("failed to enumerate monitors: %w", err)
			}
			s.monitors = monitors
		}
	}

	return s, nil
}

// Platform returns the active platform binding.
func (s *System) Platform() Platform {
	return s.platform
}

// Registry returns the system's window registry.
func (s *System) Registry() *Registry {
	return s.registry
}

// Monitors returns the ordered monitor list.
func (s *System) Monitors() []monitor.Monitor {
	return s.monitors
}

// SetMonitors replaces the ordered monitor list.
func (s *System) SetMonitors(monitors []monitor.Monitor) {
	s.monitors = monitors
}

// Window returns the wrapper for the given handle, creating and
// registering one if the handle is not yet known. Handles are opaque but
// must be non-negative.
func (s *System) Window(handle int) (*Window, error) {
	if handle < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidHandle, handle)
	}
	if w, ok := s.registry.ByHandle(handle); ok {
		return w, nil
	}
	w := &Window{handle: handle, sys: s}
	s.registry.addHandle(w)
	return w, nil
}

// Named returns the window previously assigned the given name.
func (s *System) Named(name string) (*Window, bool) {
	return s.registry.ByName(name)
}

// Foreground returns the window currently holding input focus.
func (s *System) Foreground() (*Window, error) {
	handle, err := s.platform.ForegroundWindow()
	if err != nil {
		return nil, err
	}
	return s.Window(handle)
}

// Windows enumerates every top-level window. Handles already known to the
// registry resolve to their existing wrappers, so enumeration and
// Foreground share one identity policy.
func (s *System) Windows() ([]*Window, error) {
	handles, err := s.platform.AllWindows()
	if err != nil {
		return nil, err
	}
	windows := make([]*Window, 0, len(handles))
	for _, handle := range handles {
		w, err := s.Window(handle)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// RegisterMover adds or replaces a named window mover.
func (s *System) RegisterMover(name string, m Mover) {
	s.moverMu.Lock()
	defer s.moverMu.Unlock()
	s.movers[name] = m
}

// Mover looks up a mover by name.
func (s *System) Mover(name string) (Mover, bool) {
	s.moverMu.RLock()
	defer s.moverMu.RUnlock()
	m, ok := s.movers[name]
	return m, ok
}

// Close clears the registry and releases the platform binding's resources.
func (s *System) Close() error {
	s.registry.Clear()
	if c, ok := s.platform.(closer); ok {
		return c.Close()
	}
	return nil
}
