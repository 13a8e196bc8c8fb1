package geohash

import (
	"github.com/dhconnelly/rtreego"
)

// Rect converts the box to a two dimensional rtreego rectangle with
// longitude on the first axis and latitude on the second.
func (b BBox) Rect() (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.West, b.South},
		[]float64{b.East - b.West, b.North - b.South},
	)
}

// Bounds makes Cell an rtreego.Spatial, so decoded cells can be loaded into
// a caller's R-tree directly.
func (c Cell) Bounds() rtreego.Rect {
	r, err := c.BBox().Rect()
	if err != nil {
		// zero-size cell, only possible for a zero Cell value
		return rtreego.Point{c.Lon, c.Lat}.ToRect(0)
	}
	return r
}

// Spatials decodes each hash and returns the cells as rtreego.Spatial values,
// ready for rtreego.NewTree bulk loading.
func Spatials(hashes ...string) ([]rtreego.Spatial, error) {
	out := make([]rtreego.Spatial, 0, len(hashes))
	for _, h := range hashes {
		cell, err := DecodeCell(h)
		if err != nil {
			return nil, err
		}
		out = append(out, cell)
	}
	return out, nil
}
