package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintableOrHex(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		want string
	}{
		{"Text", []byte("abc"), "abc"},
		{"Space", []byte("a b"), "a b"},
		{"Binary", []byte{0x00, 0xFF}, "0x00ff"},
		{"Newline", []byte("a\n"), "0x610a"},
		{"Empty", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PrintableOrHex(tc.in))
		})
	}
}
