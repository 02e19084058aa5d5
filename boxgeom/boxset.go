package boxgeom

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBoxShape is returned when a box set does not have exactly 4 columns
	ErrBoxShape = errors.New("box set must have 4 columns (y1, x1, y2, x2)")
	// ErrEmptyBoxSet is returned when a box set has no rows
	ErrEmptyBoxSet = errors.New("box set is empty")
	// ErrShapeMismatch is returned when row-paired inputs have different number of rows
	ErrShapeMismatch = errors.New("paired box sets have different number of rows")
)

// NewBoxSet creates N×4 matrix with one row per box.
// Passing no boxes gives an empty matrix which every operation rejects with ErrEmptyBoxSet.
func NewBoxSet(boxes ...Box) *mat.Dense {
	if len(boxes) == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, 0, 4*len(boxes))
	for _, box := range boxes {
		data = append(data, box[:]...)
	}
	return mat.NewDense(len(boxes), 4, data)
}

// Boxes returns rows of N×4 matrix as boxes
func Boxes(m mat.Matrix) []Box {
	rows, _ := m.Dims()
	boxes := make([]Box, rows)
	for i := range boxes {
		boxes[i] = boxAt(m, i)
	}
	return boxes
}

func boxAt(m mat.Matrix, i int) Box {
	return Box{m.At(i, 0), m.At(i, 1), m.At(i, 2), m.At(i, 3)}
}

// checkBoxSet validates N×4 shape and returns N
func checkBoxSet(name string, m mat.Matrix) (int, error) {
	if m == nil {
		return 0, errors.Wrapf(ErrEmptyBoxSet, "%s is nil", name)
	}
	rows, cols := m.Dims()
	if rows == 0 {
		return 0, errors.Wrapf(ErrEmptyBoxSet, "%s", name)
	}
	if cols != 4 {
		return 0, errors.Wrapf(ErrBoxShape, "%s has %d columns", name, cols)
	}
	return rows, nil
}

// checkPaired validates two row-paired box sets and returns their common row count
func checkPaired(nameA string, a mat.Matrix, nameB string, b mat.Matrix) (int, error) {
	rowsA, err := checkBoxSet(nameA, a)
	if err != nil {
		return 0, err
	}
	rowsB, err := checkBoxSet(nameB, b)
	if err != nil {
		return 0, err
	}
	if rowsA != rowsB {
		return 0, errors.Wrapf(ErrShapeMismatch, "%s has %d rows, %s has %d rows", nameA, rowsA, nameB, rowsB)
	}
	return rowsA, nil
}

// columns splits N×4 matrix into its coordinate columns y1, x1, y2, x2
func columns(m mat.Matrix) [4][]float64 {
	var cols [4][]float64
	for j := range cols {
		cols[j] = mat.Col(nil, j, m)
	}
	return cols
}

// stackColumns builds N×len(cols) matrix from equal-length columns
func stackColumns(n int, cols ...[]float64) *mat.Dense {
	stacked := mat.NewDense(n, len(cols), nil)
	for j, col := range cols {
		stacked.SetCol(j, col)
	}
	return stacked
}

// areasOf computes (y2-y1)*(x2-x1) for every row given as columns
func areasOf(cols [4][]float64) []float64 {
	n := len(cols[0])
	height := floats.SubTo(make([]float64, n), cols[2], cols[0])
	width := floats.SubTo(make([]float64, n), cols[3], cols[1])
	return floats.MulTo(height, height, width)
}

// centerBoxes is a box set in center form
type centerBoxes struct {
	centerY []float64
	centerX []float64
	height  []float64
	width   []float64
}

// toCenterForm converts corner-form box set to center form: center = corner + 0.5*size
func toCenterForm(m mat.Matrix) centerBoxes {
	cols := columns(m)
	n := len(cols[0])
	height := floats.SubTo(make([]float64, n), cols[2], cols[0])
	width := floats.SubTo(make([]float64, n), cols[3], cols[1])
	return centerBoxes{
		centerY: floats.AddScaledTo(make([]float64, n), cols[0], 0.5, height),
		centerX: floats.AddScaledTo(make([]float64, n), cols[1], 0.5, width),
		height:  height,
		width:   width,
	}
}
