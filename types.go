package colex

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// MaxSpecialized is the largest tuple length served by a specialized
// engine. Longer tuples fall back to the generic incremental engine,
// where building a dedicated engine stops paying for itself.
const MaxSpecialized = 20

// Sentinel errors for generator construction.
var (
	// ErrNonIntegerLength is returned when the length argument cannot be
	// interpreted as an integer.
	ErrNonIntegerLength = errors.New("colex: length cannot be interpreted as an integer")

	// ErrNegativeLength is returned when the length argument converts to a
	// negative integer.
	ErrNegativeLength = errors.New("colex: length must be non-negative")
)

// indexify returns the integer interpretation of length.
//
// Any value of integer kind (signed or unsigned, named types included)
// converts; everything else — floats, numeric strings, bools, nil — fails
// with ErrNonIntegerLength. No truncating or parsing coercions.
func indexify(length any) (int, error) {
	if r, ok := length.(int); ok {
		return r, nil
	}
	if length == nil {
		return 0, fmt.Errorf("%w: <nil>", ErrNonIntegerLength)
	}
	v := reflect.ValueOf(length)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if int64(int(n)) != n {
			return 0, fmt.Errorf("%w: %v overflows int", ErrNonIntegerLength, n)
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt {
			return 0, fmt.Errorf("%w: %v overflows int", ErrNonIntegerLength, u)
		}
		return int(u), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNonIntegerLength, length)
	}
}
