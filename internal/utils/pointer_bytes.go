package utils

import (
	"unsafe"
)

type sliceHeader struct {
	Data unsafe.Pointer
	Len  int
	Cap  int
}

// Returns the memory behind val as a byte slice of the given length. No copy is made.
func PointerToBytes[T any](val *T, length int) []byte {
	header := sliceHeader{
		Data: unsafe.Pointer(val),
		Len:  length,
		Cap:  length,
	}

	return *(*[]byte)(unsafe.Pointer(&header))
}

// Reinterprets the start of b as a *T. The caller must make sure b is at least
// unsafe.Sizeof(T) bytes long.
func BytesToPointer[T any](b []byte) *T {
	header := *(*sliceHeader)(unsafe.Pointer(&b))
	return (*T)(header.Data)
}

func SizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Reinterprets b as a slice of n items of T. No copy is made.
func BytesToSlice[T any](b []byte, n int) []T {
	if n == 0 {
		return nil
	}

	header := sliceHeader{
		Data: (*sliceHeader)(unsafe.Pointer(&b)).Data,
		Len:  n,
		Cap:  n,
	}

	return *(*[]T)(unsafe.Pointer(&header))
}
