// Package arena implements a linear (bump) allocator over a caller-supplied
// buffer.
//
// # Overview
//
// An Arena borrows a contiguous []byte and hands out aligned sub-regions of
// it in strictly increasing offset order. There is no per-allocation free:
// the only way to reclaim memory is Reset, which rewinds the cursor to zero
// in O(1). This is particularly useful for:
//
//   - Per-frame or per-message scratch memory
//   - Building a message buffer whose layout is described by offsets
//   - Transient passes that allocate many small values and drop them together
//
// The arena never allocates, frees or grows its buffer. Ownership stays with
// the caller, who must keep the buffer alive while the arena is in use.
//
// # Basic Usage
//
//	buf := arena.AlignedBuffer(1024, 64)
//	a := arena.NewArena(buf, 4)
//
//	// Offset idiom: descriptors are plain {Offset, Size} values
//	d, err := a.Append([]byte("Hello"))
//	n, err := arena.AppendValue(a, uint32(42))
//	v := arena.LoadValue[uint32](a, n)
//
//	// Handle idiom: typed accessors bound to pool memory
//	h, err := arena.AppendHandle(a, Point{X: 1, Y: 2})
//	h.Ptr().X = 3
//
//	// Rewind for reuse (O(1) operation)
//	a.Reset()
//
// # Alignment
//
// Every allocation starts at an address that is a multiple of the arena's
// alignment granularity (DefaultAlignment unless set at construction). The
// cursor is rounded up lazily at each allocation, not padded after it.
// Handles and typed slices use the larger of the arena alignment and the
// element type's own alignment.
//
// # Errors
//
// A request that does not fit in the remaining, alignment-adjusted capacity
// fails with an *OutOfSpaceError, which matches ErrOutOfSpace under
// errors.Is. A failed allocation never moves the cursor.
//
// # Caller Obligations
//
// The following are undefined behavior and are not detected in normal
// builds:
//
//   - Using a Descriptor or Handle after Reset, Bind, Release or Move
//   - Writing from a source shorter than the descriptor's size
//   - Allocating from one Arena on more than one goroutine at a time
//
// Building with -tags assert turns the first two into panics where they can
// be observed. For concurrent producers, use Shard to give each goroutine
// its own arena.
//
// # Plain Data
//
// Typed allocations (handles, values, slices) are limited to types whose
// raw bytes are a complete copy of the value: booleans, numbers, and arrays
// and structs of them. Pool memory is a []byte that the garbage collector
// does not scan, so pointers, strings, slices, maps, channels, functions and
// interfaces are rejected with ErrNotPlainData.
package arena
