package scenario

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders an optional baseline value. Nil renders as "".
func FormatNumber(v *float64) string {
	if v == nil {
		return ""
	}

	return FormatFloat(*v)
}

// FormatFloat renders v in the shortest form that reads back to the same
// float, always with a fractional part or an exponent:
//
//	50      -> "50.0"
//	0.125   -> "0.125"
//	1e16    -> "1e+16"
//	0.00001 -> "1e-05"
//
// Plain notation is used for decimal exponents in [-4, 16).
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}

		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)

	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
