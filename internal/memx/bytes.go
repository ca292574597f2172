// File: internal/memx/bytes.go
// Package memx provides the unsafe memory primitives shared by the cds
// collections: raw byte views of element storage, zero-copy string
// conversion and page pinning for sensitive buffers.

package memx

import "unsafe"

// SizeOf returns the size of T in bytes.
func SizeOf[T any]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}

// Bytes returns a raw byte view of the elements of s.
//
// The view aliases the slice storage: writes through it are visible in s.
// It must not outlive s. Zero-sized element types yield a nil view.
func Bytes[T any](s []T) []byte {
	sz := SizeOf[T]()
	if sz == 0 || len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), uintptr(len(s))*sz)
}

// String converts a byte slice to a string without copying.
//
// The result aliases b: it must be treated as read-only and must not
// outlive b.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringBytes converts a string to a byte slice without copying.
//
// The result aliases the string storage and must never be written to.
func StringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
