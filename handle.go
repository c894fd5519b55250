package arena

import (
	"unsafe"

	"github.com/pavanmanishd/linear-arena/internal/debug"
)

// Handle is a typed accessor bound to a T living inside an arena's pool.
//
// A Handle does not keep the arena or its buffer alive. It is invalidated
// by Reset, Bind, Release or Move on the arena it came from; using it
// afterwards reads or clobbers whatever now occupies that memory and is a
// caller error that the arena does not detect.
type Handle[T any] struct {
	p *T
}

// Write copies v into the bound memory.
func (h Handle[T]) Write(v T) { *h.p = v }

// Read returns a copy of the bound value.
func (h Handle[T]) Read() T { return *h.p }

// Ptr returns a pointer aliasing the bound memory. Field access through it
// (h.Ptr().Field) reads and writes the pool in place.
func (h Handle[T]) Ptr() *T { return h.p }

// IsNil reports whether h is the zero Handle.
func (h Handle[T]) IsNil() bool { return h.p == nil }

// AllocHandle allocates a zeroed T in the arena. The span is aligned to the
// larger of the arena alignment and T's own alignment requirement.
func AllocHandle[T any](a *Arena) (Handle[T], error) {
	p, err := allocValue[T](a)
	if err != nil {
		return Handle[T]{}, err
	}
	clear(bytesOf(p))
	return Handle[T]{p: p}, nil
}

// AppendHandle allocates a T in the arena and writes v into it.
func AppendHandle[T any](a *Arena, v T) (Handle[T], error) {
	p, err := allocValue[T](a)
	if err != nil {
		return Handle[T]{}, err
	}
	*p = v
	return Handle[T]{p: p}, nil
}

func allocValue[T any](a *Arena) (*T, error) {
	if err := checkPlainData[T](); err != nil {
		return nil, err
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	off, err := a.alloc(size, max(a.alignment(), int(unsafe.Alignof(zero))))
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return new(T), nil
	}
	p := unsafe.Pointer(&a.buf[off])
	debug.Assert(isAligned(uintptr(p), unsafe.Alignof(zero)), "arena: misaligned typed allocation")
	return (*T)(p), nil
}
