package boxgeom

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ClipBoxes returns a copy of boxes with y coordinates clamped to [window.Y1, window.Y2]
// and x coordinates clamped to [window.X1, window.X2]. Input is left unmodified.
func ClipBoxes(boxes mat.Matrix, window Window) (*mat.Dense, error) {
	n, err := checkBoxSet("boxes", boxes)
	if err != nil {
		return nil, err
	}
	cols := columns(boxes)
	for j, col := range cols {
		lower, upper := window.bounds(j)
		clampInPlace(col, lower, upper)
	}
	return stackColumns(n, cols[:]...), nil
}

// ClipToWindow clamps boxes the same way ClipBoxes does but writes the result back
// into boxes and returns it. Callers sharing the matrix must serialize access.
func ClipToWindow(window Window, boxes *mat.Dense) (*mat.Dense, error) {
	if boxes == nil {
		return nil, errors.Wrap(ErrEmptyBoxSet, "boxes is nil")
	}
	if _, err := checkBoxSet("boxes", boxes); err != nil {
		return nil, err
	}
	for j := 0; j < 4; j++ {
		col := mat.Col(nil, j, boxes)
		lower, upper := window.bounds(j)
		clampInPlace(col, lower, upper)
		boxes.SetCol(j, col)
	}
	return boxes, nil
}

// bounds returns clamping range for the given coordinate column
func (w Window) bounds(column int) (float64, float64) {
	if column%2 == 0 {
		return w.Y1, w.Y2
	}
	return w.X1, w.X2
}
