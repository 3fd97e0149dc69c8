// Package window abstracts operating-system window handles: discovery,
// geometry, and basic state control (minimize, maximize, restore, focus).
//
// A System owns the platform binding for the current OS, a process-wide
// registry mapping handles and names to Window wrappers, the ordered
// monitor list, and a registry of named movers for animated placement.
// Every operation is a synchronous call through to native windowing APIs;
// capabilities a platform cannot provide fail with ErrNotSupported.
package window
