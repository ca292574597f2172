// File: internal/memx/pin_windows.go

//go:build windows

package memx

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func pin(b []byte) error {
	return windows.VirtualLock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}

func unpin(b []byte) error {
	return windows.VirtualUnlock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}
