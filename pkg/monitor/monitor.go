// Package monitor models the ordered list of physical displays that
// window placement operates against.
package monitor

import (
	"errors"

	"github.com/dooshek/windowctl/pkg/geometry"
)

// ErrNoMonitors is returned when an operation needs a monitor but the
// supplied list is empty.
var ErrNoMonitors = errors.New("no monitors available")

// Monitor represents a physical display.
type Monitor struct {
	Handle int
	Name   string
	Rect   geometry.Rectangle
}

// Reorder returns the monitor list with the named outputs moved to the
// front, in the order given. Unknown names are ignored; unnamed monitors
// keep their relative order after the pinned ones.
func Reorder(monitors []Monitor, order []string) []Monitor {
	if len(order) == 0 {
		return monitors
	}

	out := make([]Monitor, 0, len(monitors))
	used := make(map[int]bool, len(monitors))

	for _, name := range order {
		for i, mon := range monitors {
			if !used[i] && mon.Name == name {
				out = append(out, mon)
				used[i] = true
				break
			}
		}
	}
	for i, mon := range monitors {
		if !used[i] {
			out = append(out, mon)
		}
	}
	return out
}

// Containing returns the first monitor in the list whose bounds contain the
// center point of rect. When no monitor contains it (the window is
// off-screen or straddling a gap), the first monitor in the list is
// returned. The list order is the caller's priority order.
func Containing(rect geometry.Rectangle, monitors []Monitor) (Monitor, error) {
	if len(monitors) == 0 {
		return Monitor{}, ErrNoMonitors
	}

	center := rect.Center()
	for _, mon := range monitors {
		if mon.Rect.Contains(center) {
			return mon, nil
		}
	}
	return monitors[0], nil
}
