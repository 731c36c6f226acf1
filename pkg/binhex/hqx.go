package binhex

import "fmt"

// Alphabet is the 64-character set of the BinHex 4.0 six-bit encoding, in
// value order.
const Alphabet = "!\"#$%&'()*+,-012345689@ABCDEFGHIJKLMNPQRSTUVXYZ[`abcdefhijklmpqr"

const invalid = 0xff

var decodeTable = func() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = invalid
	}

	for i := range len(Alphabet) {
		table[Alphabet[i]] = byte(i)
	}

	return table
}()

// encode6 packs bytes into six-bit characters. A trailing partial group is
// zero-padded to a whole character.
func encode6(in []byte) []byte {
	out := make([]byte, 0, (len(in)*4+2)/3)

	var (
		acc  uint32
		bits int
	)

	for _, b := range in {
		acc = acc<<8 | uint32(b)
		bits += 8

		for bits >= 6 {
			bits -= 6
			out = append(out, Alphabet[(acc>>bits)&0x3f])
		}

		acc &= 1<<bits - 1
	}

	if bits > 0 {
		out = append(out, Alphabet[(acc<<(6-bits))&0x3f])
	}

	return out
}

// decode6 unpacks the six-bit characters that follow the first ':' in b up
// to the terminating ':'. Line breaks are skipped; leftover bits are
// discarded. A missing terminator ends the stream at the end of b.
func decode6(b []byte) ([]byte, error) {
	start := -1

	for i, c := range b {
		if c == ':' {
			start = i
			break
		}
	}

	if start < 0 {
		return nil, ErrNoData
	}

	out := make([]byte, 0, len(b)*3/4)

	var (
		acc  uint32
		bits int
	)

	for i := start + 1; i < len(b); i++ {
		c := b[i]

		switch c {
		case '\r', '\n':
			continue
		case ':':
			return out, nil
		}

		v := decodeTable[c]
		if v == invalid {
			return nil, fmt.Errorf("%w %q at offset %d", ErrIllegalChar, c, i)
		}

		acc = acc<<6 | uint32(v)
		bits += 6

		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
			acc &= 1<<bits - 1
		}
	}

	return out, nil
}
