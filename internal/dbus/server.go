package dbus

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/dooshek/windowctl/internal/logger"
	"github.com/dooshek/windowctl/pkg/geometry"
	"github.com/dooshek/windowctl/pkg/window"
)

const (
	dbusServiceName = "com.dooshek.windowctl"
	dbusObjectPath  = "/com/dooshek/windowctl/Manager"
	dbusInterface   = "com.dooshek.windowctl.Manager"
)

// WindowEntry is the wire representation of one window in ListWindows
// replies.
type WindowEntry struct {
	Handle int64
	Title  string
}

// Server exposes window control to the voice framework over the session
// bus. The window system is not safe for concurrent mutation, so every
// exported method is serialized through one mutex.
type Server struct {
	conn   *dbus.Conn
	sys    *window.System
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewServer creates a D-Bus server around an initialized window system.
func NewServer(sys *window.System) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		sys:    sys,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start connects to the session bus, claims the service name, and exports
// the manager object.
func (s *Server) Start() error {
	var err error
	s.conn, err = dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	reply, err := s.conn.RequestName(dbusServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		s.conn.Close()
		return fmt.Errorf("failed to request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		s.conn.Close()
		return fmt.Errorf("name already taken")
	}

	err = s.conn.Export(s, dbusObjectPath, dbusInterface)
	if err != nil {
		s.conn.Close()
		return fmt.Errorf("failed to export object: %w", err)
	}

	node := &introspect.Node{
		Name: dbusObjectPath,
		Interfaces: []introspect.Interface{{
			Name: dbusInterface,
			Methods: []introspect.Method{
				{
					Name: "GetForeground",
					Args: []introspect.Arg{
						{Name: "handle", Type: "x", Direction: "out"},
						{Name: "title", Type: "s", Direction: "out"},
					},
				},
				{
					Name: "ListWindows",
					Args: []introspect.Arg{
						{Name: "windows", Type: "a(xs)", Direction: "out"},
					},
				},
				{
					Name: "FocusWindow",
					Args: []introspect.Arg{
						{Name: "handle", Type: "x", Direction: "in"},
					},
				},
				{
					Name: "NameWindow",
					Args: []introspect.Arg{
						{Name: "handle", Type: "x", Direction: "in"},
						{Name: "name", Type: "s", Direction: "in"},
					},
				},
				{
					Name: "FocusNamed",
					Args: []introspect.Arg{
						{Name: "name", Type: "s", Direction: "in"},
					},
				},
				{
					Name: "MoveWindow",
					Args: []introspect.Arg{
						{Name: "handle", Type: "x", Direction: "in"},
						{Name: "x", Type: "i", Direction: "in"},
						{Name: "y", Type: "i", Direction: "in"},
						{Name: "width", Type: "i", Direction: "in"},
						{Name: "height", Type: "i", Direction: "in"},
						{Name: "animate", Type: "s", Direction: "in"},
					},
				},
				{
					Name: "MinimizeWindow",
					Args: []introspect.Arg{
						{Name: "handle", Type: "x", Direction: "in"},
					},
				},
			},
			Signals: []introspect.Signal{
				{
					Name: "WindowFocused",
					Args: []introspect.Arg{
						{Name: "handle", Type: "x"},
					},
				},
			},
		}},
	}

	err = s.conn.Export(introspect.NewIntrospectable(node), dbusObjectPath, "org.freedesktop.DBus.Introspectable")
	if err != nil {
		s.conn.Close()
		return fmt.Errorf("failed to export introspectable: %w", err)
	}

	logger.Infof("🔌 D-Bus service started: %s", dbusServiceName)

	return nil
}

// Stop stops the D-Bus server
func (s *Server) Stop() {
	s.cancel()
	if s.conn != nil {
		s.conn.Close()
	}
	logger.Infof("🔌 D-Bus service stopped")
}

// Wait waits for the server context to be cancelled
func (s *Server) Wait() {
	<-s.ctx.Done()
}

// GetForeground returns the handle and title of the focused window (D-Bus method)
func (s *Server) GetForeground() (int64, string, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.sys.Foreground()
	if err != nil {
		return 0, "", dbus.MakeFailedError(err)
	}
	title, err := w.Title()
	if err != nil {
		logger.Debugf("D-Bus: no title for window %d: %v", w.Handle(), err)
		title = ""
	}
	return int64(w.Handle()), title, nil
}

// ListWindows enumerates all top-level windows (D-Bus method)
func (s *Server) ListWindows() ([]WindowEntry, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	windows, err := s.sys.Windows()
	if err != nil {
		return nil, dbus.MakeFailedError(err)
	}

	entries := make([]WindowEntry, 0, len(windows))
	for _, w := range windows {
		title, err := w.Title()
		if err != nil {
			title = ""
		}
		entries = append(entries, WindowEntry{Handle: int64(w.Handle()), Title: title})
	}
	return entries, nil
}

// FocusWindow brings a window to the foreground by handle (D-Bus method)
func (s *Server) FocusWindow(handle int64) *dbus.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.sys.Window(int(handle))
	if err != nil {
		return dbus.MakeFailedError(err)
	}
	if err := w.SetForeground(); err != nil {
		return dbus.MakeFailedError(err)
	}
	s.emitSignal("WindowFocused", handle)
	return nil
}

// NameWindow assigns a human-readable name to a window so later calls can
// address it via FocusNamed (D-Bus method)
func (s *Server) NameWindow(handle int64, name string) *dbus.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return dbus.MakeFailedError(fmt.Errorf("window name must not be empty"))
	}

	w, err := s.sys.Window(int(handle))
	if err != nil {
		return dbus.MakeFailedError(err)
	}
	w.SetName(name)
	logger.Debugf("D-Bus: window %d named %q", handle, name)
	return nil
}

// FocusNamed brings a previously named window to the foreground (D-Bus method)
func (s *Server) FocusNamed(name string) *dbus.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.sys.Named(name)
	if !ok {
		return dbus.MakeFailedError(fmt.Errorf("no window named %q", name))
	}
	if err := w.SetForeground(); err != nil {
		return dbus.MakeFailedError(err)
	}
	s.emitSignal("WindowFocused", int64(w.Handle()))
	return nil
}

// MoveWindow repositions a window, optionally animated (D-Bus method)
func (s *Server) MoveWindow(handle int64, x, y, width, height int32, animate string) *dbus.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.sys.Window(int(handle))
	if err != nil {
		return dbus.MakeFailedError(err)
	}
	rect := geometry.New(float64(x), float64(y), float64(width), float64(height))
	if err := w.Move(rect, animate); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

// MinimizeWindow minimizes a window by handle (D-Bus method)
func (s *Server) MinimizeWindow(handle int64) *dbus.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.sys.Window(int(handle))
	if err != nil {
		return dbus.MakeFailedError(err)
	}
	if err := w.Minimize(); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

// emitSignal emits a D-Bus signal
func (s *Server) emitSignal(name string, args ...interface{}) {
	if s.conn == nil {
		logger.Warnf("D-Bus: Cannot emit signal %s - no connection", name)
		return
	}

	signalPath := dbus.ObjectPath(dbusObjectPath)
	signalName := dbusInterface + "." + name

	err := s.conn.Emit(signalPath, signalName, args...)
	if err != nil {
		logger.Errorf("D-Bus: Failed to emit signal %s", err, name)
	} else {
		logger.Debugf("D-Bus: Emitted signal: %s", name)
	}
}
