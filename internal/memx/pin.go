// File: internal/memx/pin.go

package memx

// Pin locks the pages backing b into physical memory so that wiped
// secrets are never swapped to disk. Pinning is best-effort on platforms
// without a lock syscall; see pin_stub.go.
//
// An empty buffer is a no-op.
func Pin(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return pin(b)
}

// Unpin releases pages previously locked with Pin.
func Unpin(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unpin(b)
}
