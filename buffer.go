package arena

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/xerrors"
)

const defaultCacheLine = 64

// AlignedBuffer returns a new caller-owned buffer of size bytes whose first
// byte sits on an alignment boundary. Arenas bound to it place their
// offsets at exact multiples of their alignment.
func AlignedBuffer(size, alignment int) []byte {
	if !isPowerOf2(alignment) {
		panic(xerrors.Errorf("arena: alignment %d: %w", alignment, ErrInvalidAlignment))
	}
	buf := make([]byte, size+alignment)
	addr := int(addressOf(buf))
	shift := alignUp(addr, alignment) - addr
	return buf[shift : size+shift : size+shift]
}

// CacheLineSize returns the L1 data cache line size of the host CPU, or 64
// if it cannot be detected. It is a suitable alignment for arenas whose
// allocations are handed to different cores.
func CacheLineSize() int {
	if n := cpuid.CPU.CacheLine; isPowerOf2(n) {
		return n
	}
	return defaultCacheLine
}
