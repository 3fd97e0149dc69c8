package window

import (
	"errors"

	"github.com/dooshek/windowctl/pkg/geometry"
)

// ErrNotSupported is returned by a platform binding for every capability it
// does not implement. Callers must treat it as a fixed platform limitation,
// not a transient failure.
var ErrNotSupported = errors.New("operation not supported on this platform")

// ErrInvalidHandle is returned when a window is constructed with a negative
// handle.
var ErrInvalidHandle = errors.New("window handle must be non-negative")

// Capability identifies one operation of the platform contract, for use
// with Platform.Supports.
type Capability string

const (
	CapTitle      Capability = "title"
	CapClassName  Capability = "class_name"
	CapExecutable Capability = "executable"
	CapValid      Capability = "valid"
	CapEnabled    Capability = "enabled"
	CapVisible    Capability = "visible"
	CapMinimized  Capability = "minimized"
	CapMaximized  Capability = "maximized"
	CapGeometry   Capability = "geometry"
	CapControl    Capability = "control"
	CapForeground Capability = "foreground"
	CapEnumerate  Capability = "enumerate"
)

// Platform is the capability contract a platform binding implements. Every
// operation forwards to one or more native windowing calls and blocks until
// they return; identity accessors are computed per call and never cached.
//
// A binding is free to leave capabilities unimplemented by returning
// ErrNotSupported; Supports lets callers probe for that up front.
type Platform interface {
	Name() string
	Supports(c Capability) bool

	ForegroundWindow() (int, error)
	AllWindows() ([]int, error)

	Title(handle int) (string, error)
	ClassName(handle int) (string, error)
	Executable(handle int) (string, error)

	IsValid(handle int) (bool, error)
	IsEnabled(handle int) (bool, error)
	IsVisible(handle int) (bool, error)
	IsMinimized(handle int) (bool, error)
	IsMaximized(handle int) (bool, error)

	Position(handle int) (geometry.Rectangle, error)
	SetPosition(handle int, rect geometry.Rectangle) error

	Minimize(handle int) error
	Maximize(handle int) error
	Restore(handle int) error
	SetForeground(handle int) error
}

// Unsupported is a Platform with every capability unimplemented. Bindings
// embed it so that anything they do not override fails with ErrNotSupported
// instead of being silently absent.
type Unsupported struct{}

func (Unsupported) Name() string              { return "unsupported" }
func (Unsupported) Supports(Capability) bool  { return false }
func (Unsupported) ForegroundWindow() (int, error) { return 0, ErrNotSupported }
func (Unsupported) AllWindows() ([]int, error)     { return nil, ErrNotSupported }

func (Unsupported) Title(int) (string, error)      { return "", ErrNotSupported }
func (Unsupported) ClassName(int) (string, error)  { return "", ErrNotSupported }
func (Unsupported) Executable(int) (string, error) { return "", ErrNotSupported }

func (Unsupported) IsValid(int) (bool, error)     { return false, ErrNotSupported }
func (Unsupported) IsEnabled(int) (bool, error)   { return false, ErrNotSupported }
func (Unsupported) IsVisible(int) (bool, error)   { return false, ErrNotSupported }
func (Unsupported) IsMinimized(int) (bool, error) { return false, ErrNotSupported }
func (Unsupported) IsMaximized(int) (bool, error) { return false, ErrNotSupported }

func (Unsupported) Position(int) (geometry.Rectangle, error) {
	return geometry.Rectangle{}, ErrNotSupported
}
func (Unsupported) SetPosition(int, geometry.Rectangle) error { return ErrNotSupported }

func (Unsupported) Minimize(int) error      { return ErrNotSupported }
func (Unsupported) Maximize(int) error      { return ErrNotSupported }
func (Unsupported) Restore(int) error       { return ErrNotSupported }
func (Unsupported) SetForeground(int) error { return ErrNotSupported }
