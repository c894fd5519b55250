package arena

import (
	"unsafe"

	"golang.org/x/xerrors"
)

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized: after a Reset they hold whatever was
// written there before.
// Returns a nil slice if n == 0.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if err := checkPlainData[T](); err != nil {
		return nil, err
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if n < 0 {
		return nil, xerrors.Errorf("arena: slice of %d elements: %w", n, ErrInvalidSize)
	}
	if elemSize > 0 && n > maxInt/elemSize {
		return nil, a.outOfSpace(maxInt, a.alignment())
	}
	off, err := a.alloc(elemSize*n, max(a.alignment(), int(unsafe.Alignof(zero))))
	if err != nil || n == 0 {
		return nil, err
	}
	if elemSize == 0 {
		return make([]T, n), nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&a.buf[off])), n), nil
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory. This is slower than AllocSlice but ensures clean initialization.
func AllocSliceZeroed[T any](a *Arena, n int) ([]T, error) {
	s, err := AllocSlice[T](a, n)
	if err != nil {
		return nil, err
	}
	clear(s)
	return s, nil
}

const maxInt = int(^uint(0) >> 1)
