package arena

import (
	"reflect"
	"sync"
	"unsafe"

	"golang.org/x/xerrors"

	"github.com/pavanmanishd/linear-arena/internal/debug"
)

var plainDataCache sync.Map // reflect.Type -> error

// checkPlainData reports whether the raw bytes of a T are a complete and
// valid copy of it. Pool memory is a []byte, which the garbage collector
// never scans for pointers, so only pointer-free types may live there.
func checkPlainData[T any]() error {
	t := reflect.TypeFor[T]()
	if v, ok := plainDataCache.Load(t); ok {
		if v == nil {
			return nil
		}
		return v.(error)
	}
	var err error
	if !isPlainData(t) {
		err = xerrors.Errorf("arena: %v: %w", t, ErrNotPlainData)
	}
	plainDataCache.Store(t, err)
	return err
}

func mustBePlainData[T any]() {
	if err := checkPlainData[T](); err != nil {
		panic(err)
	}
}

func isPlainData(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || isPlainData(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isPlainData(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// bytesOf views the memory of *v as a byte slice.
func bytesOf[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// AppendValue copies the raw bytes of v into a new allocation of
// unsafe.Sizeof(v) bytes at the arena's alignment.
func AppendValue[T any](a *Arena, v T) (Descriptor, error) {
	if err := checkPlainData[T](); err != nil {
		return Descriptor{}, err
	}
	return a.Append(bytesOf(&v))
}

// StoreValue overwrites the span described by d with the raw bytes of v.
// d.Size must equal unsafe.Sizeof(v).
func StoreValue[T any](a *Arena, d Descriptor, v T) {
	mustBePlainData[T]()
	src := bytesOf(&v)
	debug.Assert(len(src) == d.Size, "arena: StoreValue size mismatch")
	a.Write(d, src)
}

// LoadValue copies a T out of the span described by d. The span does not
// need to be aligned for T.
func LoadValue[T any](a *Arena, d Descriptor) T {
	mustBePlainData[T]()
	var v T
	dst := bytesOf(&v)
	debug.Assert(len(dst) == d.Size, "arena: LoadValue size mismatch")
	copy(dst, a.Bytes(d))
	return v
}
