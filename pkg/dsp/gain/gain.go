// Package gain provides amplitude conversions and block gain helpers.
package gain

import "math"

// MinDB is treated as silence; conversions clamp to it instead of
// returning infinities.
const MinDB = -200.0

// LinearToDb converts a linear amplitude to decibels. Values <= 0
// return MinDB.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * math.Log10(linear)
}

// DbToLinear converts decibels to a linear amplitude. Values <= MinDB
// return 0.
func DbToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// DbToLinear32 is the float32 version of DbToLinear.
func DbToLinear32(db float32) float32 {
	if db <= MinDB {
		return 0
	}
	return float32(math.Pow(10.0, float64(db)/20.0))
}

// ApplyBuffer applies a gain factor to a buffer in place.
func ApplyBuffer(buffer []float32, gain float32) {
	for i := range buffer {
		buffer[i] *= gain
	}
}

// Peak returns the largest absolute sample value in the buffer.
func Peak(buffer []float32) float32 {
	var peak float32
	for _, s := range buffer {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}
