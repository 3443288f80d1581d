package vkdump

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	"github.com/sugawarayuuta/sonnet"
)

// quoteString renders s as a JSON string literal. Invalid UTF-8 is replaced
// rather than copied through.
func quoteString(s string) []byte {
	b, err := sonnet.Marshal(s)
	if err != nil {
		// Marshal of a plain string cannot fail; keep output valid anyway.
		return []byte(strconv.Quote(s))
	}
	return b
}

// formatFloat renders the shortest decimal that round-trips at the given bit
// size. JSON has no NaN or infinity, so those become strings.
func formatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return `"NaN"`
	case math.IsInf(v, 1):
		return `"+Inf"`
	case math.IsInf(v, -1):
		return `"-Inf"`
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}

// encodeBlob renders data as a quoted, padded standard Base64 string.
func encodeBlob(data []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(data))+2)
	out[0] = '"'
	base64.StdEncoding.Encode(out[1:], data)
	out[len(out)-1] = '"'
	return out
}

func formatHandle(v uint64, policy HandlePolicy) []byte {
	if policy == HandleAddress {
		return []byte(fmt.Sprintf(`"0x%016x"`, v))
	}
	return []byte(`""`)
}

// plainKey reports whether name can be written between quotes unchanged.
func plainKey(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 0x20 || c >= 0x7f || c == '"' || c == '\\' {
			return false
		}
	}
	return true
}

// clip bounds data to the size field that describes it.
func clip(data []byte, size uint64) []byte {
	if data == nil {
		return nil
	}
	if size < uint64(len(data)) {
		return data[:size]
	}
	return data
}
