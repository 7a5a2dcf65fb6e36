package internal

import "hash/crc32"

// Fletcher16 computes the 16-bit Fletcher checksum of data. Both accumulators
// start at 255 and are reduced modulo 255 once all bytes are consumed, so an
// empty input yields 0x0000.
func Fletcher16(data []byte) uint16 {
	simple, fletcher := uint64(255), uint64(255)
	for _, b := range data {
		simple += uint64(b)
		fletcher += simple
	}
	simple %= 255
	fletcher %= 255
	return uint16(fletcher<<8 | simple)
}

// Fletcher16Fold is the older variant that reduces each accumulator with two
// end-around-carry folds instead of a true modulo. It disagrees with
// Fletcher16 whenever an accumulator is a non-zero multiple of 255.
func Fletcher16Fold(data []byte) uint16 {
	simple, fletcher := uint64(255), uint64(255)
	for _, b := range data {
		simple += uint64(b)
		fletcher += simple
	}
	for i := 0; i < 2; i++ {
		simple = (simple & 255) + (simple >> 8)
		fletcher = (fletcher & 255) + (fletcher >> 8)
	}
	return uint16(fletcher<<8 | simple)
}

// CalculateCRC32 computes the CRC-32 checksum of the data using the IEEE polynomial,
// which is the most common CRC32 standard.
func CalculateCRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
