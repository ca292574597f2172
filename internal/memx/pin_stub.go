// File: internal/memx/pin_stub.go

//go:build !linux && !windows

package memx

// No page locking on this platform; pinning degrades to a no-op.

func pin(_ []byte) error { return nil }

func unpin(_ []byte) error { return nil }
