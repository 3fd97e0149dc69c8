package window

import "sync"

// Registry holds the process-wide lookup maps from window handle and
// human-assigned name to Window. It is owned by a System: created at
// startup, cleared on shutdown. Entries are never pruned while the system
// is running; a handle stays known for the lifetime of the registry, and a
// duplicate name simply overwrites the previous mapping.
type Registry struct {
	mu       sync.RWMutex
	byHandle map[int]*Window
	byName   map[string]*Window
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byHandle: make(map[int]*Window),
		byName:   make(map[string]*Window),
	}
}

// ByHandle looks up a window by its platform handle.
func (r *Registry) ByHandle(handle int) (*Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.byHandle[handle]
	return w, ok
}

// ByName looks up a window by an assigned name.
func (r *Registry) ByName(name string) (*Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.byName[name]
	return w, ok
}

// Len returns the number of registered handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byHandle)
}

// Clear drops all registered windows.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byHandle = make(map[int]*Window)
	r.byName = make(map[string]*Window)
}

func (r *Registry) addHandle(w *Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byHandle[w.handle] = w
}

func (r *Registry) addName(name string, w *Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[name] = w
}
