package geohash

import "math"

// Approximate meters per degree at the equator.
const (
	MetersPerDegreeLon = 111320.0
	MetersPerDegreeLat = 110540.0
)

// LonLat is a longitude/latitude pair in degrees.
type LonLat struct {
	Lon float64
	Lat float64
}

// BBox is a cell extent in degrees.
type BBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

// Contains reports whether other lies entirely within b.
func (b BBox) Contains(other BBox) bool {
	return other.West >= b.West && other.East <= b.East &&
		other.South >= b.South && other.North <= b.North
}

// Cell is a decoded geohash: the center of the final bisected intervals and
// their half widths. Cells are values and never change after decoding.
type Cell struct {
	Lon    float64
	Lat    float64
	LonErr float64
	LatErr float64
	Hash   string
}

// DecodeCell decodes hash into its cell.
func DecodeCell(hash string) (Cell, error) {
	bits, err := StringToBits(hash)
	if err != nil {
		return Cell{}, err
	}
	lonBits, latBits := deinterleave(bits)
	lon := DecodeAxis(lonBits, LonRange())
	lat := DecodeAxis(latBits, LatRange())
	return Cell{
		Lon:    lon.Mid(),
		Lat:    lat.Mid(),
		LonErr: lon.HalfSpan(),
		LatErr: lat.HalfSpan(),
		Hash:   hash,
	}, nil
}

// Point returns the cell center.
func (c Cell) Point() (lon, lat float64) {
	return c.Lon, c.Lat
}

// PointErr returns the cell center and the half widths on each axis.
func (c Cell) PointErr() (lon, lat, lonErr, latErr float64) {
	return c.Lon, c.Lat, c.LonErr, c.LatErr
}

// Center returns the cell center as a LonLat.
func (c Cell) Center() LonLat {
	return LonLat{Lon: c.Lon, Lat: c.Lat}
}

// BBox returns the cell extent.
func (c Cell) BBox() BBox {
	return BBox{
		West:  c.Lon - c.LonErr,
		South: c.Lat - c.LatErr,
		East:  c.Lon + c.LonErr,
		North: c.Lat + c.LatErr,
	}
}

// Polygon returns the cell corners counter-clockwise from the south-west
// corner: SW, SE, NE, NW. When closed is set SW is repeated at the end, as
// GeoJSON rings require.
func (c Cell) Polygon(closed bool) []LonLat {
	b := c.BBox()
	ring := []LonLat{
		{Lon: b.West, Lat: b.South},
		{Lon: b.East, Lat: b.South},
		{Lon: b.East, Lat: b.North},
		{Lon: b.West, Lat: b.North},
	}
	if closed {
		ring = append(ring, ring[0])
	}
	return ring
}

// WidthDegrees is the cell width in degrees of longitude.
func (c Cell) WidthDegrees() float64 {
	return c.LonErr * 2
}

// HeightDegrees is the cell height in degrees of latitude.
func (c Cell) HeightDegrees() float64 {
	return c.LatErr * 2
}

// WidthMeters approximates the cell width at its center latitude.
func (c Cell) WidthMeters() float64 {
	return c.LonErr * 2 * MetersPerDegreeLon * math.Cos(c.Lat*math.Pi/180)
}

// HeightMeters approximates the cell height. Meridian spacing is treated as
// constant.
func (c Cell) HeightMeters() float64 {
	return c.LatErr * 2 * MetersPerDegreeLat
}

// Contains reports whether the point would encode into this cell. Cells are
// half-open on their east and north edges, except where those edges are the
// global maximum.
func (c Cell) Contains(lon, lat float64) bool {
	b := c.BBox()
	if lon < b.West || lon > b.East || lat < b.South || lat > b.North {
		return false
	}
	if lon == b.East && b.East != LonRange().Max {
		return false
	}
	if lat == b.North && b.North != LatRange().Max {
		return false
	}
	return true
}
