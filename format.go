package radical

import (
	"math"
	"strconv"
	"strings"
)

// RadicalSign separates the coefficient from the remainder.
const RadicalSign = "√"

// String renders the result as "<coefficient> √<remainder>", e.g. "5.0 √2".
// The coefficient keeps its float form unless nothing was factored out.
func (r Result) String() string {
	var b strings.Builder
	if r.Tree != nil && r.Tree.Kind == KindRemainder {
		b.WriteString(formatInt(r.Coefficient))
	} else {
		b.WriteString(formatFloat(r.Coefficient))
	}
	b.WriteByte(' ')
	b.WriteString(RadicalSign)
	if r.Remainder == math.Trunc(r.Remainder) && math.Abs(r.Remainder) < 1e16 {
		b.WriteString(formatInt(r.Remainder))
	} else {
		b.WriteString(formatFloat(r.Remainder))
	}
	return b.String()
}

// formatFloat renders v like a float literal: integral values keep a ".0",
// very large and very small magnitudes switch to exponent form.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// formatInt renders the integer part of v. Non-finite and out of range
// values use formatFloat.
func formatInt(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e18 {
		return formatFloat(v)
	}
	return strconv.FormatInt(int64(v), 10)
}
