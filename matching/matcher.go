// Package matching turns a location into the set of geohash keys a caller
// should probe to find things near it.
package matching

import (
	"strings"

	"geohash-kit/geohash"
)

// Cover returns the distinct cells of the 3x3 block around the point at the
// given precision, center first and then in neighbor order. Near the poles
// the block collapses and fewer than nine keys come back.
func Cover(lon, lat float64, precision int) ([]string, error) {
	center, err := geohash.Encode(lon, lat, precision)
	if err != nil {
		return nil, err
	}
	return CoverHash(center)
}

// CoverHash is Cover for an already encoded cell.
func CoverHash(hash string) ([]string, error) {
	block, err := geohash.Neighbors(hash)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(block))
	seen := make(map[string]struct{}, len(block))
	add := func(h string) {
		if _, ok := seen[h]; ok {
			return
		}
		seen[h] = struct{}{}
		keys = append(keys, h)
	}
	add(block[geohash.Center])
	for _, h := range block {
		add(h)
	}
	return keys, nil
}

// Covers reports whether hash falls inside any cell of cover. A hash
// shorter than the cover cells never matches.
func Covers(cover []string, hash string) bool {
	for _, key := range cover {
		if strings.HasPrefix(hash, key) {
			return true
		}
	}
	return false
}

// Nearest returns the candidate hash sharing the longest prefix with
// target, and that prefix length. Ties keep the earliest candidate.
func Nearest(target string, candidates []string) (string, int, bool) {
	best, bestLen, found := "", -1, false
	for _, c := range candidates {
		n := len(geohash.CommonPrefix(target, c))
		if n > bestLen {
			best, bestLen, found = c, n, true
		}
	}
	if !found {
		return "", 0, false
	}
	return best, bestLen, true
}
