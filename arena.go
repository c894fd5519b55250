package arena

import (
	"golang.org/x/xerrors"

	"github.com/pavanmanishd/linear-arena/internal/debug"
)

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Arena is a linear allocator over a borrowed buffer. It never allocates,
// frees or grows the buffer; the caller keeps ownership and must keep it
// alive for as long as the arena or anything allocated from it is in use.
//
// Arena is not goroutine-safe. Use Shard to give each goroutine its own
// arena over a disjoint part of one buffer.
//
// An Arena must not be copied; use Move to transfer the borrow.
type Arena struct {
	noCopy noCopy

	buf    []byte // borrowed backing memory, capacity == len(buf)
	offset int    // cursor: first byte not yet handed out
	align  int    // alignment granularity, power of two; 0 means DefaultAlignment
	peak   int    // high-water mark of offset since the last Bind
}

// NewArena creates an Arena bound to buf. If alignment <= 0,
// DefaultAlignment is used. It panics if alignment is not a power of two.
func NewArena(buf []byte, alignment int) *Arena {
	if alignment <= 0 {
		alignment = DefaultAlignment
	}
	if !isPowerOf2(alignment) {
		panic(xerrors.Errorf("arena: alignment %d: %w", alignment, ErrInvalidAlignment))
	}
	a := &Arena{align: alignment}
	a.Bind(buf)
	return a
}

// Bind rebinds the arena to buf and rewinds the cursor. Allocations made
// from the previous buffer are forgotten, not freed.
func (a *Arena) Bind(buf []byte) {
	a.buf = buf
	a.offset = 0
	a.peak = 0
	debug.Log("bind", "capacity", len(buf), "align", a.alignment())
}

// Release drops the borrowed buffer and leaves the arena unbound. The
// buffer itself is untouched.
func (a *Arena) Release() {
	a.buf = nil
	a.offset = 0
	a.peak = 0
}

// Move transfers the borrow to a new Arena with the same cursor and
// alignment. The receiver is left unbound.
func (a *Arena) Move() *Arena {
	b := &Arena{buf: a.buf, offset: a.offset, align: a.align, peak: a.peak}
	a.Release()
	return b
}

// Reset rewinds the cursor to zero in O(1). The underlying bytes are not
// cleared. Every Descriptor and Handle obtained before the call is dangling
// afterwards and must not be used.
func (a *Arena) Reset() {
	debug.Log("reset", "offset", a.offset)
	a.offset = 0
}

// Allocate claims n bytes at the next aligned position and returns their
// descriptor. On failure the arena is unchanged.
func (a *Arena) Allocate(n int) (Descriptor, error) {
	off, err := a.alloc(n, a.alignment())
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{Offset: off, Size: n}, nil
}

// Append allocates len(data) bytes and copies data into them.
func (a *Arena) Append(data []byte) (Descriptor, error) {
	d, err := a.Allocate(len(data))
	if err != nil {
		return Descriptor{}, err
	}
	copy(a.buf[d.Offset:d.End()], data)
	return d, nil
}

// Write copies exactly d.Size bytes from src into the span described by d.
//
// src must hold at least d.Size bytes and d must come from this arena with
// no Reset or Bind since; violating either is a caller error that is only
// diagnosed in builds with the assert tag.
func (a *Arena) Write(d Descriptor, src []byte) {
	debug.Assert(len(src) >= d.Size, "arena: write source shorter than descriptor size")
	debug.Assert(d.End() <= a.offset, "arena: write through descriptor beyond the cursor")
	copy(a.buf[d.Offset:d.End()], src[:d.Size])
}

// Bytes returns the span described by d. The slice aliases the pool; writes
// through it are visible to every other view of the same span.
func (a *Arena) Bytes(d Descriptor) []byte {
	debug.Assert(d.End() <= len(a.buf), "arena: descriptor outside of the bound buffer")
	return a.buf[d.Offset:d.End():d.End()]
}

// alloc runs the bump algorithm for n bytes at the given alignment and
// returns the start offset of the claimed span.
func (a *Arena) alloc(n, align int) (int, error) {
	if n < 0 {
		return 0, xerrors.Errorf("arena: allocation of %d bytes: %w", n, ErrInvalidSize)
	}
	capacity := len(a.buf)
	if capacity == 0 {
		return 0, &OutOfSpaceError{Requested: n, Alignment: align}
	}

	start := a.alignedCursor(align)
	if start > capacity {
		if n != 0 {
			return 0, a.outOfSpace(n, align)
		}
		start = capacity
	}
	if n > capacity-start {
		return 0, a.outOfSpace(n, align)
	}

	a.offset = start + n
	if a.offset > a.peak {
		a.peak = a.offset
	}
	return start, nil
}

// alignedCursor returns the first offset at or after the cursor whose
// address, not offset, is a multiple of align.
func (a *Arena) alignedCursor(align int) int {
	base := addressOf(a.buf)
	return int(alignUp(base+uintptr(a.offset), uintptr(align)) - base)
}

func (a *Arena) outOfSpace(n, align int) error {
	return &OutOfSpaceError{Requested: n, Alignment: align, Offset: a.offset, Capacity: len(a.buf)}
}

func (a *Arena) alignment() int {
	if a.align == 0 {
		return DefaultAlignment
	}
	return a.align
}

// Capacity returns the size of the bound buffer in bytes, or 0 when unbound.
func (a *Arena) Capacity() int { return len(a.buf) }

// Offset returns the number of bytes consumed so far, padding included.
func (a *Arena) Offset() int { return a.offset }

// Alignment returns the alignment granularity of the arena.
func (a *Arena) Alignment() int { return a.alignment() }

// Remaining returns the number of bytes after the cursor.
func (a *Arena) Remaining() int { return len(a.buf) - a.offset }

// Bound reports whether the arena has a buffer to allocate from.
func (a *Arena) Bound() bool { return len(a.buf) > 0 }

// Fits reports whether an Allocate(n) would succeed right now.
func (a *Arena) Fits(n int) bool {
	if n < 0 || len(a.buf) == 0 {
		return false
	}
	start := a.alignedCursor(a.alignment())
	if start > len(a.buf) {
		return n == 0
	}
	return n <= len(a.buf)-start
}
