// Package safecast implements functions to safely cast loosely typed values, such as numbers
// decoded from ledger JSON that may arrive as strings or floats, without silent overflow.
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

const (
	errUint32RangeExceeded = "value %d exceeds uint32 range"
)

// ToUint64 converts a JSON scalar (number, numeric string or json.Number) to uint64.
// Fractional numbers are rejected rather than truncated.
func ToUint64(value any) (uint64, error) {
	if f, ok := value.(float64); ok {
		return Float64ToUint64(f)
	}

	return cast.ToUint64E(value)
}

// ToUint32 converts a JSON scalar to uint32 and checks for overflow.
func ToUint32(value any) (uint32, error) {
	v, err := ToUint64(value)
	if err != nil {
		return 0, err
	}

	return Uint64ToUint32(v)
}

// ToUint8 converts a scalar to uint8 and checks for overflow.
func ToUint8(value any) (uint8, error) {
	v, err := ToUint64(value)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint8 {
		return 0, fmt.Errorf("value %d exceeds uint8 range", v)
	}

	return cast.ToUint8E(v)
}

// ToFloat64 converts a JSON scalar to float64.
func ToFloat64(value any) (float64, error) {
	return cast.ToFloat64E(value)
}

// Uint64ToUint32 safely converts an uint64 to uint32 using cast and checks for overflow
func Uint64ToUint32(value uint64) (uint32, error) {
	if value > math.MaxUint32 {
		return 0, fmt.Errorf(errUint32RangeExceeded, value)
	}

	return cast.ToUint32E(value)
}

// Float64ToUint64 safely converts a float64 to uint64 using cast and checks for overflow
func Float64ToUint64(value float64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %g is negative, cannot convert to uint64", value)
	}

	if value > math.MaxUint64 {
		return 0, fmt.Errorf("value %g exceeds uint64 range", value)
	}

	if value != math.Trunc(value) {
		return 0, fmt.Errorf("value %g has fractional part, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}
