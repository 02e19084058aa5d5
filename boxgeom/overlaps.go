package boxgeom

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Overlaps computes IoU between every box of boxes1 (N×4) and every box of boxes2 (M×4).
// Both sets are tiled into N*M pair rows and the math runs column-wise over all pairs at once.
//
// Result is M×N: row j belongs to boxes2[j], column i to boxes1[i].
// Note that OverlapsLooped returns the transposed N×M orientation.
func Overlaps(boxes1, boxes2 mat.Matrix) (*mat.Dense, error) {
	n, err := checkBoxSet("boxes1", boxes1)
	if err != nil {
		return nil, err
	}
	m, err := checkBoxSet("boxes2", boxes2)
	if err != nil {
		return nil, err
	}

	// 1. Tile boxes1 and repeat each of boxes2, so flat row k = j*n + i
	// pairs boxes1[i] with boxes2[j]
	pairs := n * m
	tiled := mat.NewDense(pairs, 4, nil)
	repeated := mat.NewDense(pairs, 4, nil)
	rows1 := make([][]float64, n)
	for i := range rows1 {
		rows1[i] = mat.Row(nil, i, boxes1)
	}
	row2 := make([]float64, 4)
	for j := 0; j < m; j++ {
		mat.Row(row2, j, boxes2)
		for i := 0; i < n; i++ {
			tiled.SetRow(j*n+i, rows1[i])
			repeated.SetRow(j*n+i, row2)
		}
	}

	// 2. Intersections
	a := columns(tiled)
	b := columns(repeated)
	y1 := maxTo(make([]float64, pairs), a[0], b[0])
	x1 := maxTo(make([]float64, pairs), a[1], b[1])
	y2 := minTo(make([]float64, pairs), a[2], b[2])
	x2 := minTo(make([]float64, pairs), a[3], b[3])
	interWidth := maxScalarTo(x2, 0, floats.SubTo(x2, x2, x1))
	interHeight := maxScalarTo(y2, 0, floats.SubTo(y2, y2, y1))
	intersection := floats.MulTo(make([]float64, pairs), interWidth, interHeight)

	// 3. Unions
	union := floats.AddTo(make([]float64, pairs), areasOf(a), areasOf(b))
	floats.Sub(union, intersection)

	// 4. IoU, reshaped to [boxes2, boxes1]
	iou := floats.DivTo(make([]float64, pairs), intersection, union)
	return mat.NewDense(m, n, iou), nil
}

// OverlapsLooped computes the same IoU values as Overlaps, one boxes2 column at a time.
// It is the reference path: M sequential steps, each vectorized over boxes1.
//
// Result is N×M: row i belongs to boxes1[i], column j to boxes2[j].
func OverlapsLooped(boxes1, boxes2 mat.Matrix) (*mat.Dense, error) {
	n, err := checkBoxSet("boxes1", boxes1)
	if err != nil {
		return nil, err
	}
	m, err := checkBoxSet("boxes2", boxes2)
	if err != nil {
		return nil, err
	}

	// Areas of both sets are computed once
	area1 := areasOf(columns(boxes1))
	area2 := areasOf(columns(boxes2))

	overlaps := mat.NewDense(n, m, nil)
	for j := 0; j < m; j++ {
		iou := computeIoU(boxAt(boxes2, j), boxes1, area2[j], area1)
		overlaps.SetCol(j, iou)
	}
	return overlaps, nil
}

// computeIoU calculates IoU of the given box against every row of boxes.
// Areas are passed in so the caller computes them once. Inputs are not modified.
func computeIoU(box Box, boxes mat.Matrix, boxArea float64, boxesArea []float64) []float64 {
	cols := columns(boxes)
	n := len(cols[0])
	y1 := maxScalarTo(make([]float64, n), box[0], cols[0])
	x1 := maxScalarTo(make([]float64, n), box[1], cols[1])
	y2 := minScalarTo(make([]float64, n), box[2], cols[2])
	x2 := minScalarTo(make([]float64, n), box[3], cols[3])
	interWidth := maxScalarTo(x2, 0, floats.SubTo(x2, x2, x1))
	interHeight := maxScalarTo(y2, 0, floats.SubTo(y2, y2, y1))
	intersection := floats.MulTo(make([]float64, n), interWidth, interHeight)

	union := make([]float64, n)
	copy(union, boxesArea)
	floats.AddConst(boxArea, union)
	floats.Sub(union, intersection)

	return floats.DivTo(make([]float64, n), intersection, union)
}
