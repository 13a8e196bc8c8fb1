package geohash

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors. Every error returned by this package wraps one of them.
var (
	ErrInvalidCoordinate = errors.New("geohash: invalid coordinate")
	ErrInvalidPrecision  = errors.New("geohash: invalid precision")
	ErrInvalidCharacter  = errors.New("geohash: invalid character")
	ErrInvalidBitLength  = errors.New("geohash: bit length is not a multiple of 5")
	ErrInvalidCellSize   = errors.New("geohash: invalid cell size")
)

// CoordinateError reports a longitude or latitude outside its valid range.
type CoordinateError struct {
	Axis  string
	Value float64
	Range Range
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%v: %s %v out of range [%v, %v]", ErrInvalidCoordinate, e.Axis, e.Value, e.Range.Min, e.Range.Max)
}

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }

// PrecisionError reports a non-positive precision or bit count.
type PrecisionError struct {
	Precision int
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("%v: must be positive, got %d", ErrInvalidPrecision, e.Precision)
}

func (e *PrecisionError) Unwrap() error { return ErrInvalidPrecision }

// CharacterError names the first character of a hash that is not part of
// the geohash alphabet. Position is a byte offset. When the input is not
// valid UTF-8 at that offset, Char is utf8.RuneError and Byte holds the raw
// byte.
type CharacterError struct {
	Char     rune
	Byte     byte
	Position int
}

func (e *CharacterError) Error() string {
	if e.Char == utf8.RuneError && e.Byte != 0 {
		return fmt.Sprintf("%v byte %#x at position %d, use 0-9, b-h, j, k, m, n, p-z", ErrInvalidCharacter, e.Byte, e.Position)
	}
	return fmt.Sprintf("%v %q at position %d, use 0-9, b-h, j, k, m, n, p-z", ErrInvalidCharacter, e.Char, e.Position)
}

func (e *CharacterError) Unwrap() error { return ErrInvalidCharacter }
