//go:build !linux && !windows

package window

import "runtime"

// nullPlatform is the binding for operating systems without one. Every
// capability reports ErrNotSupported.
type nullPlatform struct {
	Unsupported
}

func newPlatform() (Platform, error) {
	return nullPlatform{}, nil
}

func (nullPlatform) Name() string { return runtime.GOOS }
