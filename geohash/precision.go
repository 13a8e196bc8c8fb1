package geohash

import (
	"fmt"
	"math"
)

// CellSize returns the width and height in meters of a cell of the given
// precision at the equator.
func CellSize(precision int) (width, height float64, err error) {
	if precision <= 0 {
		return 0, 0, &PrecisionError{Precision: precision}
	}
	total := precision * BitsPerChar
	lon, lat := LonRange(), LatRange()
	lonDeg := math.Ldexp(lon.Max-lon.Min, -(total+1)/2)
	latDeg := math.Ldexp(lat.Max-lat.Min, -total/2)
	return lonDeg * MetersPerDegreeLon, latDeg * MetersPerDegreeLat, nil
}

// PrecisionFor returns the shortest precision whose equatorial cells are no
// larger than meters on either side. Sizes below the default precision's
// cell return DefaultPrecision.
func PrecisionFor(meters float64) (int, error) {
	if !(meters > 0) {
		return 0, fmt.Errorf("%w: must be positive, got %v", ErrInvalidCellSize, meters)
	}
	for p := 1; p < DefaultPrecision; p++ {
		w, h, _ := CellSize(p)
		if w <= meters && h <= meters {
			return p, nil
		}
	}
	return DefaultPrecision, nil
}
