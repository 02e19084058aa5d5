package boxgeom

import (
	"image"
)

// Box is a single bounding box in (y1, x1, y2, x2) order.
// (y1, x1) is the top-left corner, (y2, x2) the bottom-right one.
type Box [4]float64

// NewBox creates a box from its corners
func NewBox(y1, x1, y2, x2 float64) Box {
	return Box{y1, x1, y2, x2}
}

// Height returns y2 - y1
func (b Box) Height() float64 {
	return b[2] - b[0]
}

// Width returns x2 - x1
func (b Box) Width() float64 {
	return b[3] - b[1]
}

// Area returns height * width. Degenerate boxes give zero or negative area.
func (b Box) Area() float64 {
	return b.Height() * b.Width()
}

// Center returns box's center point
func (b Box) Center() Point {
	return Point{
		X: b[1] + 0.5*b.Width(),
		Y: b[0] + 0.5*b.Height(),
	}
}

// Window is the valid coordinate extent used for clipping, in the same order as Box.
type Window struct {
	Y1 float64
	X1 float64
	Y2 float64
	X2 float64
}

// NewWindow creates a window from its corners
func NewWindow(y1, x1, y2, x2 float64) Window {
	return Window{
		Y1: y1,
		X1: x1,
		Y2: y2,
		X2: x2,
	}
}

// WindowFromRect creates a window covering given image bounds
func WindowFromRect(rect image.Rectangle) Window {
	return Window{
		Y1: float64(rect.Min.Y),
		X1: float64(rect.Min.X),
		Y2: float64(rect.Max.Y),
		X2: float64(rect.Max.X),
	}
}

// Box returns window as a Box
func (w Window) Box() Box {
	return Box{w.Y1, w.X1, w.Y2, w.X2}
}

// Rectangle is a top-left corner plus size representation of a box.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func NewRectFrom(rect image.Rectangle) Rectangle {
	return Rectangle{
		X:      float64(rect.Min.X),
		Y:      float64(rect.Min.Y),
		Width:  float64(rect.Dx()),
		Height: float64(rect.Dy()),
	}
}

// Box converts rectangle to (y1, x1, y2, x2) form
func (r Rectangle) Box() Box {
	return Box{r.Y, r.X, r.Y + r.Height, r.X + r.Width}
}

// RectFromBox converts (y1, x1, y2, x2) box to rectangle
func RectFromBox(b Box) Rectangle {
	return Rectangle{
		X:      b[1],
		Y:      b[0],
		Width:  b.Width(),
		Height: b.Height(),
	}
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}
