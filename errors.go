package arena

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrOutOfSpace is matched by every allocation failure caused by a
	// request that does not fit in the remaining, alignment-adjusted capacity.
	ErrOutOfSpace = xerrors.New("arena: out of space")

	// ErrInvalidAlignment is raised when an alignment is not a power of two.
	ErrInvalidAlignment = xerrors.New("arena: alignment must be a power of two")

	// ErrInvalidSize is returned for negative allocation sizes.
	ErrInvalidSize = xerrors.New("arena: invalid allocation size")

	// ErrNotPlainData is returned when a typed allocation is requested for a
	// type whose raw bytes do not fully describe its value.
	ErrNotPlainData = xerrors.New("arena: type is not plain data")
)

// OutOfSpaceError describes a failed allocation. The arena state is left
// exactly as it was before the call.
type OutOfSpaceError struct {
	Requested int // bytes requested
	Alignment int // alignment the request was placed at
	Offset    int // cursor at the time of the request
	Capacity  int // capacity of the arena
}

func (e *OutOfSpaceError) Error() string {
	if e.Capacity == 0 {
		return fmt.Sprintf("arena: out of space: %d bytes requested from an unbound arena", e.Requested)
	}
	return fmt.Sprintf("arena: out of space: %d bytes (align %d) requested at offset %d, capacity %d",
		e.Requested, e.Alignment, e.Offset, e.Capacity)
}

func (e *OutOfSpaceError) Is(target error) bool { return target == ErrOutOfSpace }
