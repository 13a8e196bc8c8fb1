// Package geohash encodes coordinates to geohash strings and back, and
// answers the usual grid questions about a hash: neighbors, parent,
// children, bounding box and area.
//
// All functions are pure. The only package state is the read-only alphabet
// lookup table, so everything is safe for concurrent use.
package geohash

import "math"

// DefaultPrecision gives cells of roughly 3.7cm x 1.9cm.
const DefaultPrecision = 12

// Encode returns the geohash of the point with the given number of
// characters.
func Encode(lon, lat float64, precision int) (string, error) {
	if !LonRange().In(lon) {
		return "", &CoordinateError{Axis: "longitude", Value: lon, Range: LonRange()}
	}
	if !LatRange().In(lat) {
		return "", &CoordinateError{Axis: "latitude", Value: lat, Range: LatRange()}
	}
	if precision <= 0 {
		return "", &PrecisionError{Precision: precision}
	}
	total := precision * BitsPerChar
	lonBits, err := EncodeAxis(lon, LonRange(), (total+1)/2)
	if err != nil {
		return "", err
	}
	latBits, err := EncodeAxis(lat, LatRange(), total/2)
	if err != nil {
		return "", err
	}
	return BitsToString(interleave(lonBits, latBits))
}

// EncodeDefault encodes with DefaultPrecision.
func EncodeDefault(lon, lat float64) (string, error) {
	return Encode(lon, lat, DefaultPrecision)
}

// Decode returns the cell named by hash.
func Decode(hash string) (Cell, error) {
	return DecodeCell(hash)
}

// Neighbor positions in the slice returned by Neighbors.
const (
	NorthWest = iota
	North
	NorthEast
	West
	Center
	East
	SouthWest
	South
	SouthEast
)

// Neighbors returns the 3x3 block of same-precision hashes around hash,
// row by row from north to south and west to east:
// [NW, N, NE, W, C, E, SW, S, SE]. Longitude wraps across the antimeridian.
// Latitude is clamped at the poles, so cells on a pole row repeat.
func Neighbors(hash string) ([9]string, error) {
	var out [9]string
	cell, err := DecodeCell(hash)
	if err != nil {
		return out, err
	}
	if hash == "" {
		// the whole world has no neighbors
		return out, nil
	}
	lonStep := cell.LonErr * 2
	latStep := cell.LatErr * 2
	i := 0
	for _, dLat := range [3]float64{1, 0, -1} {
		lat := clampLatitude(cell.Lat + dLat*latStep)
		for _, dLon := range [3]float64{-1, 0, 1} {
			lon := wrapLongitude(cell.Lon + dLon*lonStep)
			n, err := Encode(lon, lat, len(hash))
			if err != nil {
				return [9]string{}, err
			}
			out[i] = n
			i++
		}
	}
	return out, nil
}

// Parent drops the last character. Hashes of length one or less are their
// own parent.
func Parent(hash string) string {
	if len(hash) <= 1 {
		return hash
	}
	return hash[:len(hash)-1]
}

// Children returns the 32 hashes one character longer than hash, in
// alphabet order.
func Children(hash string) ([]string, error) {
	if err := Validate(hash); err != nil {
		return nil, err
	}
	out := make([]string, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		out[i] = hash + Alphabet[i:i+1]
	}
	return out, nil
}

// CommonPrefix returns the longest leading run shared by a and b.
func CommonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// BBoxOf decodes hash and returns its extent.
func BBoxOf(hash string) (BBox, error) {
	cell, err := DecodeCell(hash)
	if err != nil {
		return BBox{}, err
	}
	return cell.BBox(), nil
}

// AreaMetersSquared approximates the surface area of the cell.
func AreaMetersSquared(hash string) (float64, error) {
	cell, err := DecodeCell(hash)
	if err != nil {
		return 0, err
	}
	return cell.WidthMeters() * cell.HeightMeters(), nil
}

// wrapLongitude maps lon into [-180, 180).
func wrapLongitude(lon float64) float64 {
	r := LonRange()
	span := r.Max - r.Min
	w := math.Mod(lon-r.Min, span)
	if w < 0 {
		w += span
	}
	w += r.Min
	if w == r.Max {
		return r.Min
	}
	return w
}

// clampLatitude limits lat to [-90, 90].
func clampLatitude(lat float64) float64 {
	r := LatRange()
	return math.Max(r.Min, math.Min(lat, r.Max))
}
