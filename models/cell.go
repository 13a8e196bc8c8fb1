package models

import "geohash-kit/geohash"

type Cell struct {
	Geohash      string       `json:"geohash"`
	Longitude    float64      `json:"longitude"`
	Latitude     float64      `json:"latitude"`
	LonErr       float64      `json:"lon_err"`
	LatErr       float64      `json:"lat_err"`
	BBox         [4]float64   `json:"bbox"` // west, south, east, north
	Polygon      [][2]float64 `json:"polygon,omitempty"`
	WidthMeters  float64      `json:"width_m"`
	HeightMeters float64      `json:"height_m"`
}

type Neighbors struct {
	Geohash string    `json:"geohash"`
	Grid    [9]string `json:"grid"` // NW, N, NE, W, C, E, SW, S, SE
}

type Area struct {
	Geohash      string  `json:"geohash"`
	SquareMeters float64 `json:"square_meters"`
}

// NewCell flattens a decoded cell for JSON output. The polygon is only
// filled when withPolygon is set.
func NewCell(c geohash.Cell, withPolygon bool) Cell {
	b := c.BBox()
	out := Cell{
		Geohash:      c.Hash,
		Longitude:    c.Lon,
		Latitude:     c.Lat,
		LonErr:       c.LonErr,
		LatErr:       c.LatErr,
		BBox:         [4]float64{b.West, b.South, b.East, b.North},
		WidthMeters:  c.WidthMeters(),
		HeightMeters: c.HeightMeters(),
	}
	if withPolygon {
		for _, p := range c.Polygon(true) {
			out.Polygon = append(out.Polygon, [2]float64{p.Lon, p.Lat})
		}
	}
	return out
}
