package arena

import "fmt"

// Descriptor identifies an allocation by its position in the pool rather
// than by address, so it can be stored or serialized independently of where
// the pool lives in memory.
//
// Descriptors from one arena never overlap as long as no Reset or Bind
// happened between their creation.
type Descriptor struct {
	Offset int `json:"offset"` // bytes from the start of the pool
	Size   int `json:"size"`   // length of the span in bytes
}

// End returns the offset one past the last byte of the span.
func (d Descriptor) End() int { return d.Offset + d.Size }

// Overlaps reports whether d and o share at least one byte.
func (d Descriptor) Overlaps(o Descriptor) bool {
	return d.Size > 0 && o.Size > 0 && d.Offset < o.End() && o.Offset < d.End()
}

func (d Descriptor) String() string {
	return fmt.Sprintf("[%d, %d)", d.Offset, d.End())
}
