//go:build windows

package window

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllWindowsRepeatedEnumeration(t *testing.T) {
	// A daemon answering ListWindows calls enumerates indefinitely; the
	// process-wide syscall callback budget (~2000) must not be consumed
	// per call.
	p := &win32Platform{}
	for i := 0; i < 2500; i++ {
		_, err := p.AllWindows()
		require.NoError(t, err)
	}
}
