// SPDX-License-Identifier: MIT

package grid

import (
	"io"
	"reflect"

	"go.uber.org/zap"
)

// Finalizer is implemented by elements that hold resources beyond their own
// memory. Release and every rollback path call Finalize exactly once per
// element, in row-major order.
type Finalizer interface {
	Finalize()
}

// Cloner is implemented by elements that need more than assignment to copy.
// FromElem and Array2.Clone use it when present.
type Cloner[T any] interface {
	Clone() T
}

var (
	finalizerType = reflect.TypeFor[Finalizer]()
	closerType    = reflect.TypeFor[io.Closer]()
)

// needsFinalize reports whether values of T may carry a finalizer. Interface
// element types always do, since the dynamic type decides.
func needsFinalize[T any]() bool {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return true
	}
	pt := reflect.PointerTo(t)
	return t.Implements(finalizerType) || t.Implements(closerType) ||
		pt.Implements(finalizerType) || pt.Implements(closerType)
}

// finalizeElem runs the element's finalizer, if any, and zeroes the slot.
// Pointer receivers win over value receivers; nil pointers and nil interfaces
// are skipped.
func finalizeElem[T any](p *T) error {
	var err error
	switch f := any(p).(type) {
	case Finalizer:
		f.Finalize()
	case io.Closer:
		err = f.Close()
	default:
		switch f := any(*p).(type) {
		case nil:
		case Finalizer:
			if !isNil(f) {
				f.Finalize()
			}
		case io.Closer:
			if !isNil(f) {
				err = f.Close()
			}
		}
	}
	var zero T
	*p = zero
	return err
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// cloneElem copies v, through Cloner when T or *T implements it.
func cloneElem[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// finalizeOwned finalizes a value the container took ownership of but never
// stored, such as a FromElem template. Errors have nowhere to go but the log.
func finalizeOwned[T any](v *T) {
	if err := finalizeElem(v); err != nil {
		Logger().Warn("grid: finalizing owned value", zap.Error(err))
	}
}
