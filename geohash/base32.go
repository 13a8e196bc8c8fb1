package geohash

import "unicode/utf8"

// Alphabet is the geohash base32 alphabet. It omits a, i, l and o and is not
// the RFC 4648 alphabet.
const Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// BitsPerChar is the number of bits each geohash character carries.
const BitsPerChar = 5

const invalidIndex = 0xff

// decodeTable maps a byte to its alphabet index, or invalidIndex.
var decodeTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidIndex
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = byte(i)
	}
	return t
}()

// BitsToString packs bits into geohash characters, five bits per character,
// most significant bit first.
func BitsToString(bits []uint8) (string, error) {
	if len(bits)%BitsPerChar != 0 {
		return "", ErrInvalidBitLength
	}
	buf := make([]byte, len(bits)/BitsPerChar)
	for i := range buf {
		var idx byte
		for _, b := range bits[i*BitsPerChar : (i+1)*BitsPerChar] {
			idx = idx<<1 | b&1
		}
		buf[i] = Alphabet[idx]
	}
	return string(buf), nil
}

// StringToBits expands a geohash into its bit stream. The result always has
// 5*len(hash) entries.
func StringToBits(hash string) ([]uint8, error) {
	bits := make([]uint8, 0, len(hash)*BitsPerChar)
	for i := 0; i < len(hash); i++ {
		idx := decodeTable[hash[i]]
		if idx == invalidIndex {
			return nil, charError(hash, i)
		}
		for shift := BitsPerChar - 1; shift >= 0; shift-- {
			bits = append(bits, (idx>>uint(shift))&1)
		}
	}
	return bits, nil
}

// Validate checks that every character of hash belongs to the alphabet.
func Validate(hash string) error {
	for i := 0; i < len(hash); i++ {
		if decodeTable[hash[i]] == invalidIndex {
			return charError(hash, i)
		}
	}
	return nil
}

// charError describes the invalid byte at offset i. Every alphabet byte is
// ASCII, so i is always the start of a rune or a stray byte.
func charError(hash string, i int) error {
	r, size := utf8.DecodeRuneInString(hash[i:])
	if r == utf8.RuneError && size <= 1 {
		return &CharacterError{Char: utf8.RuneError, Byte: hash[i], Position: i}
	}
	return &CharacterError{Char: r, Position: i}
}
