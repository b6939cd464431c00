package sdf

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================
// Number formatting
// ============================================================

// FormatFloat prints v in its shortest decimal form ("2", "0.03").
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDecimal prints v as a float literal that always carries a
// fraction ("-2.0", "0.9"). Decimal exponents below -4 or from 16 up
// switch to exponent form ("1e-05", "1e+16"). Non-finite values print
// as nan, inf, -inf.
func FormatDecimal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if v != 0 {
		exp := strconv.FormatFloat(v, 'e', -1, 64)
		if n, err := strconv.Atoi(exp[strings.IndexByte(exp, 'e')+1:]); err == nil && (n < -4 || n >= 16) {
			return exp
		}
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Pose formats x y z roll pitch yaw.
func Pose(values [6]string) string {
	return strings.Join(values[:], " ")
}

// Vector joins shortest-form scalars with single spaces.
func Vector(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatFloat(v)
	}
	return strings.Join(parts, " ")
}
