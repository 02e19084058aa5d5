package boxgeom

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BoxRefinement computes the deltas (dy, dx, dh, dw) that transform every row of box
// into the same row of gtBox:
//
//	dy = (gtCenterY - centerY) / height
//	dx = (gtCenterX - centerX) / width
//	dh = log(gtHeight / height)
//	dw = log(gtWidth / width)
//
// Heights and widths of box must be positive; zero sizes give Inf/NaN and are not checked.
// Returns ErrShapeMismatch when box and gtBox have different number of rows.
func BoxRefinement(box, gtBox mat.Matrix) (*mat.Dense, error) {
	n, err := checkPaired("box", box, "gt_box", gtBox)
	if err != nil {
		return nil, err
	}
	src := toCenterForm(box)
	gt := toCenterForm(gtBox)

	dy := floats.SubTo(make([]float64, n), gt.centerY, src.centerY)
	floats.Div(dy, src.height)
	dx := floats.SubTo(make([]float64, n), gt.centerX, src.centerX)
	floats.Div(dx, src.width)

	dh := floats.DivTo(make([]float64, n), gt.height, src.height)
	logInPlace(dh)
	dw := floats.DivTo(make([]float64, n), gt.width, src.width)
	logInPlace(dw)

	return stackColumns(n, dy, dx, dh, dw), nil
}

// ApplyBoxDeltas applies deltas produced by BoxRefinement to boxes, row by row.
// Output coordinates are not clipped, use ClipBoxes or ClipToWindow for that.
// Returns ErrShapeMismatch when boxes and deltas have different number of rows.
func ApplyBoxDeltas(boxes, deltas mat.Matrix) (*mat.Dense, error) {
	n, err := checkPaired("boxes", boxes, "deltas", deltas)
	if err != nil {
		return nil, err
	}
	c := toCenterForm(boxes)
	d := columns(deltas)

	// Shift centers
	floats.Add(c.centerY, floats.MulTo(make([]float64, n), d[0], c.height))
	floats.Add(c.centerX, floats.MulTo(make([]float64, n), d[1], c.width))

	// Scale sizes
	expInPlace(d[2])
	floats.Mul(c.height, d[2])
	expInPlace(d[3])
	floats.Mul(c.width, d[3])

	// Back to y1, x1, y2, x2
	y1 := floats.AddScaledTo(make([]float64, n), c.centerY, -0.5, c.height)
	x1 := floats.AddScaledTo(make([]float64, n), c.centerX, -0.5, c.width)
	y2 := floats.AddTo(make([]float64, n), y1, c.height)
	x2 := floats.AddTo(make([]float64, n), x1, c.width)

	return stackColumns(n, y1, x1, y2, x2), nil
}
