package hooks

import "reflect"

// depsEqual compares two dependency tuples element-wise with shallow
// equality:
//
//   - tuples of different length are unequal
//   - elements of different dynamic types are unequal
//   - slices are equal when they share a backing array and length
//   - maps, channels and pointers are equal when they are the same reference
//   - funcs are never equal
//   - everything else is compared with ==, and values that turn out not to
//     be comparable (a struct holding a slice, say) are unequal
//   - floats follow ==, so a NaN dependency never equals itself and
//     invalidates on every render
//
// Composite values are compared by reference, never by contents. Passing a
// freshly built slice or map as a dependency therefore invalidates on every
// render.
func depsEqual(prev, next []any) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if !depEqual(prev[i], next[i]) {
			return false
		}
	}
	return true
}

func depEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Func:
		return false
	case reflect.Slice:
		return va.Len() == vb.Len() && va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Map, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.UnsafePointer() == vb.UnsafePointer()
	}
	if !va.Type().Comparable() {
		return false
	}
	return safeEqual(a, b)
}

// safeEqual compares two values of the same comparable type. Interface
// fields can still hold incomparable values, which panic under ==.
func safeEqual(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

// cloneDeps never returns nil, so an empty tuple stays distinguishable from
// an always-run effect.
func cloneDeps(deps []any) []any {
	out := make([]any, len(deps))
	copy(out, deps)
	return out
}
