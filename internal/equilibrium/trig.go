package equilibrium

import "math"

// ToRad converts degrees to radians.
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// SinCos returns sin and cos of an angle given in degrees.
func SinCos(deg float64) (sin, cos float64) {
	return math.Sincos(ToRad(deg))
}

// RoundTo rounds v to the given number of decimals, half away from zero.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// IsClean reports whether v survives rounding to [AnswerDecimals] places.
func IsClean(v float64) bool {
	return math.Abs(v-RoundTo(v, AnswerDecimals)) < AnswerTolerance
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
