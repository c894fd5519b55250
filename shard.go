package arena

import "golang.org/x/xerrors"

// Shard splits buf into n disjoint arenas of equal capacity, one per
// goroutine. Each shard capacity is rounded down to a multiple of
// alignment so that, for an aligned buf, every shard starts aligned.
// Trailing bytes that do not fill a whole shard are left unused.
//
// Shards are built with full slice expressions: no shard can read or write
// outside its own part of buf.
func Shard(buf []byte, n, alignment int) []*Arena {
	if n <= 0 {
		panic(xerrors.Errorf("arena: shard count %d: %w", n, ErrInvalidSize))
	}
	if alignment <= 0 {
		alignment = DefaultAlignment
	}
	if !isPowerOf2(alignment) {
		panic(xerrors.Errorf("arena: alignment %d: %w", alignment, ErrInvalidAlignment))
	}
	size := (len(buf) / n) &^ (alignment - 1)
	shards := make([]*Arena, n)
	for i := range shards {
		lo, hi := i*size, (i+1)*size
		shards[i] = NewArena(buf[lo:hi:hi], alignment)
	}
	return shards
}
