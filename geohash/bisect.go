package geohash

// Range is a closed numeric interval on one axis.
type Range struct {
	Min float64
	Max float64
}

// LonRange returns the full longitude axis, [-180, 180].
func LonRange() Range {
	return Range{Min: -180, Max: 180}
}

// LatRange returns the full latitude axis, [-90, 90].
func LatRange() Range {
	return Range{Min: -90, Max: 90}
}

// Mid returns the bisection point of the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// HalfSpan returns half of the width of the range.
func (r Range) HalfSpan() float64 {
	return (r.Max - r.Min) / 2
}

// In reports whether v lies inside the closed range.
func (r Range) In(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// EncodeAxis bisects r bitCount times around value and returns one bit per
// step, 1 meaning the value lies in the upper half. A value equal to the
// midpoint goes to the upper half.
func EncodeAxis(value float64, r Range, bitCount int) ([]uint8, error) {
	if bitCount <= 0 {
		return nil, &PrecisionError{Precision: bitCount}
	}
	bits := make([]uint8, bitCount)
	for i := range bits {
		mid := r.Mid()
		if value >= mid {
			bits[i] = 1
			r.Min = mid
		} else {
			r.Max = mid
		}
	}
	return bits, nil
}

// DecodeAxis narrows r by the given bits and returns the final interval.
func DecodeAxis(bits []uint8, r Range) Range {
	for _, b := range bits {
		mid := r.Mid()
		if b != 0 {
			r.Min = mid
		} else {
			r.Max = mid
		}
	}
	return r
}

// interleave merges lon and lat bit streams, longitude first.
func interleave(lonBits, latBits []uint8) []uint8 {
	bits := make([]uint8, 0, len(lonBits)+len(latBits))
	for i := 0; i < len(lonBits) || i < len(latBits); i++ {
		if i < len(lonBits) {
			bits = append(bits, lonBits[i])
		}
		if i < len(latBits) {
			bits = append(bits, latBits[i])
		}
	}
	return bits
}

// deinterleave splits a stream into the even (longitude) and odd (latitude)
// positions.
func deinterleave(bits []uint8) (lonBits, latBits []uint8) {
	lonBits = make([]uint8, 0, (len(bits)+1)/2)
	latBits = make([]uint8, 0, len(bits)/2)
	for i, b := range bits {
		if i%2 == 0 {
			lonBits = append(lonBits, b)
		} else {
			latBits = append(latBits, b)
		}
	}
	return lonBits, latBits
}
