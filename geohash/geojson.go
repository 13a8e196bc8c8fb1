package geohash

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Bound converts the box to an orb.Bound.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// Ring returns the closed counter-clockwise ring of the cell.
func (c Cell) Ring() orb.Ring {
	corners := c.Polygon(true)
	ring := make(orb.Ring, len(corners))
	for i, p := range corners {
		ring[i] = orb.Point{p.Lon, p.Lat}
	}
	return ring
}

// OrbPolygon returns the cell as a single-ring orb.Polygon.
func (c Cell) OrbPolygon() orb.Polygon {
	return orb.Polygon{c.Ring()}
}

// Feature returns the cell polygon as a GeoJSON feature. The hash is the
// feature id and the center and size go into the properties.
func (c Cell) Feature() *geojson.Feature {
	f := geojson.NewFeature(c.OrbPolygon())
	f.ID = c.Hash
	f.Properties["geohash"] = c.Hash
	f.Properties["center"] = []float64{c.Lon, c.Lat}
	f.Properties["width_m"] = c.WidthMeters()
	f.Properties["height_m"] = c.HeightMeters()
	return f
}

// FeatureCollection decodes every hash into a feature, keeping input order.
func FeatureCollection(hashes ...string) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for _, h := range hashes {
		cell, err := DecodeCell(h)
		if err != nil {
			return nil, err
		}
		fc.Append(cell.Feature())
	}
	return fc, nil
}
