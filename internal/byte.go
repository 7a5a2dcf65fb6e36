package internal

import (
	"encoding/hex"
)

// PrintableOrHex renders b as text when every byte is printable ASCII and as
// hex otherwise.
func PrintableOrHex(b []byte) string {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return "0x" + hex.EncodeToString(b)
		}
	}
	return string(b)
}
