package matching

import (
	"errors"
)

// ErrNotFound is returned by Probe when no cover is accepted before the
// retries run out.
var ErrNotFound = errors.New("no match found after maximum retries")

// Probe searches outward from a point. It hands match the cover at
// precision, then the cover one character coarser on each retry, and stops
// at the first cover match accepts. Retries stop at precision 1.
func Probe(lon, lat float64, precision, maxRetries int, match func(keys []string) bool) ([]string, error) {
	for i := 0; i < maxRetries && precision > 0; i++ {
		keys, err := Cover(lon, lat, precision)
		if err != nil {
			return nil, err
		}
		if match(keys) {
			return keys, nil
		}
		precision-- // widen the search area for the next retry
	}
	return nil, ErrNotFound
}
