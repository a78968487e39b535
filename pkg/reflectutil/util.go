package reflectutil

import "reflect"

// PartialEqual reports whether every non-zero field of a equals the
// corresponding field of b. Tests use it to compare responses while ignoring
// generated fields like ids and timestamps.
func PartialEqual[T any](a T, b T) bool {
	va := reflect.ValueOf(a).Elem()
	vb := reflect.ValueOf(b).Elem()

	for i := 0; i < va.NumField(); i++ {
		fieldA := va.Field(i)
		fieldB := vb.Field(i)

		if fieldA.IsZero() {
			continue
		}

		if !reflect.DeepEqual(fieldA.Interface(), fieldB.Interface()) {
			return false
		}
	}

	return true
}
