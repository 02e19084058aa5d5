package boxgeom

import (
	"math"
)

// IoU calculates Intersection over Union between two boxes.
// The same formula is used by Overlaps and OverlapsLooped: zero union is not
// special-cased, so two identical zero-area boxes give NaN.
func IoU(b1, b2 Box) float64 {
	y1 := maxFloat64(b1[0], b2[0])
	x1 := maxFloat64(b1[1], b2[1])
	y2 := minFloat64(b1[2], b2[2])
	x2 := minFloat64(b1[3], b2[3])

	interArea := maxFloat64(x2-x1, 0) * maxFloat64(y2-y1, 0)
	return interArea / (b1.Area() + b2.Area() - interArea)
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// clamp restricts v to [lower, upper]. NaN passes through unchanged.
func clamp(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

// maxTo stores element-wise max of s and t into dst and returns dst
func maxTo(dst, s, t []float64) []float64 {
	for i := range dst {
		dst[i] = maxFloat64(s[i], t[i])
	}
	return dst
}

// minTo stores element-wise min of s and t into dst and returns dst
func minTo(dst, s, t []float64) []float64 {
	for i := range dst {
		dst[i] = minFloat64(s[i], t[i])
	}
	return dst
}

// maxScalarTo broadcasts scalar c against t
func maxScalarTo(dst []float64, c float64, t []float64) []float64 {
	for i := range dst {
		dst[i] = maxFloat64(c, t[i])
	}
	return dst
}

// minScalarTo broadcasts scalar c against t
func minScalarTo(dst []float64, c float64, t []float64) []float64 {
	for i := range dst {
		dst[i] = minFloat64(c, t[i])
	}
	return dst
}

// clampInPlace clamps every element of s to [lower, upper]
func clampInPlace(s []float64, lower, upper float64) {
	for i := range s {
		s[i] = clamp(s[i], lower, upper)
	}
}

func logInPlace(s []float64) {
	for i := range s {
		s[i] = math.Log(s[i])
	}
}

func expInPlace(s []float64) {
	for i := range s {
		s[i] = math.Exp(s[i])
	}
}
