package engine

import (
	"math"
	"strconv"
)

// AppendFloat appends the shortest decimal text that parses back to f,
// following encoding/json's choice between plain and exponent notation.
// Integral values keep a ".0" suffix so ParseNumber classifies them as floats
// again. f must be finite.
func AppendFloat(dst []byte, f float64) []byte {
	start := len(dst)
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(dst)
		if n-start >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
		return dst
	}
	for _, c := range dst[start:] {
		if c == '.' {
			return dst
		}
	}
	return append(dst, '.', '0')
}
