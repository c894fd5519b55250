package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
	W    float64
}

type header struct {
	Kind  uint16
	Flags [3]bool
	Span  [2]point
}

type withPointer struct {
	N    int
	Next *withPointer
}

func offsetOf[T any](buf []byte, h Handle[T]) int {
	return int(uintptr(unsafe.Pointer(h.Ptr())) - addressOf(buf))
}

func TestAllocHandleZeroed(t *testing.T) {
	buf := AlignedBuffer(64, 8)
	for i := range buf {
		buf[i] = 0xff
	}
	a := NewArena(buf, 0)

	h, err := AllocHandle[point](a)
	require.NoError(t, err)
	assert.False(t, h.IsNil())
	assert.Equal(t, point{}, h.Read())
	assert.Equal(t, int(unsafe.Sizeof(point{})), a.Offset())
}

func TestHandleReadWrite(t *testing.T) {
	buf := AlignedBuffer(64, 8)
	a := NewArena(buf, 4)

	hi, err := AppendHandle(a, int32(1337))
	require.NoError(t, err)
	assert.Equal(t, int32(1337), hi.Read())
	assert.Equal(t, 0, offsetOf(buf, hi))

	// float64 needs 8-byte alignment even in a 4-aligned arena
	hf, err := AppendHandle(a, 42.0)
	require.NoError(t, err)
	assert.Equal(t, 8, offsetOf(buf, hf))
	assert.Equal(t, 42.0, hf.Read())

	*hf.Ptr() = 1337.0
	assert.Equal(t, 1337.0, hf.Read())

	hf.Write(-1.5)
	assert.Equal(t, -1.5, *hf.Ptr())
	assert.Equal(t, int32(1337), hi.Read(), "neighbouring handle must be untouched")
}

func TestHandleMemberAccess(t *testing.T) {
	a := NewArena(AlignedBuffer(128, 8), 0)

	h, err := AppendHandle(a, header{Kind: 7})
	require.NoError(t, err)

	h.Ptr().Flags[1] = true
	h.Ptr().Span[1].Y = 99
	h.Ptr().Span[0].W = 0.25

	got := h.Read()
	assert.Equal(t, uint16(7), got.Kind)
	assert.Equal(t, [3]bool{false, true, false}, got.Flags)
	assert.Equal(t, int32(99), got.Span[1].Y)
	assert.Equal(t, 0.25, got.Span[0].W)
}

func TestHandleNotPlainData(t *testing.T) {
	a := NewArena(AlignedBuffer(128, 8), 0)

	_, err := AllocHandle[string](a)
	assert.ErrorIs(t, err, ErrNotPlainData)
	_, err = AppendHandle(a, withPointer{N: 1})
	assert.ErrorIs(t, err, ErrNotPlainData)
	_, err = AllocHandle[[]byte](a)
	assert.ErrorIs(t, err, ErrNotPlainData)
	_, err = AllocHandle[map[int]int](a)
	assert.ErrorIs(t, err, ErrNotPlainData)
	_, err = AllocHandle[any](a)
	assert.ErrorIs(t, err, ErrNotPlainData)

	assert.Equal(t, 0, a.Offset(), "rejected types must not consume space")
}

func TestHandleOutOfSpace(t *testing.T) {
	a := NewArena(AlignedBuffer(12, 8), 4)

	_, err := AppendHandle(a, int32(1))
	require.NoError(t, err)

	// 4 bytes used; a point needs 16 bytes at 8-byte alignment
	_, err = AllocHandle[point](a)
	assert.ErrorIs(t, err, ErrOutOfSpace)
	assert.Equal(t, 4, a.Offset())

	h, err := AppendHandle(a, uint64(5))
	assert.ErrorIs(t, err, ErrOutOfSpace)
	assert.True(t, h.IsNil())
}

func TestHandleZeroSizeType(t *testing.T) {
	a := NewArena(AlignedBuffer(8, 8), 0)

	h, err := AllocHandle[struct{}](a)
	require.NoError(t, err)
	assert.False(t, h.IsNil())
	assert.Equal(t, struct{}{}, h.Read())
	assert.Equal(t, 0, a.Offset())
}
