package binhex

// crcTable drives the CRC-16/XMODEM checksum BinHex uses for every fork
// (polynomial 0x1021, zero initial value, no final xor).
var crcTable = func() [256]uint16 {
	var table [256]uint16

	for i := range table {
		c := uint16(i) << 8
		for range 8 {
			if c&0x8000 != 0 {
				c = c<<1 ^ 0x1021
			} else {
				c <<= 1
			}
		}

		table[i] = c
	}

	return table
}()

// CRC returns the checksum of p continued from crc.
func CRC(crc uint16, p []byte) uint16 {
	for _, b := range p {
		crc = crc<<8 ^ crcTable[byte(crc>>8)^b]
	}

	return crc
}
