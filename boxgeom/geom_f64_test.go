package boxgeom

import (
	"image"
	"math"
	"testing"
)

const (
	eps = 0.00001
)

func TestIoU(t *testing.T) {
	a := NewBox(0, 0, 10, 10)
	b := NewBox(5, 5, 15, 15)
	// intersection = 25, union = 100 + 100 - 25 = 175
	correctAnswer := 25.0 / 175.0
	answer := IoU(a, b)
	if math.Abs(answer-correctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correctAnswer)
	}
	if math.Abs(answer-0.142857) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, 0.142857)
	}
}

func TestIoUSymmetry(t *testing.T) {
	pairs := [][2]Box{
		{NewBox(0, 0, 10, 10), NewBox(5, 5, 15, 15)},
		{NewBox(1, 2, 7, 4), NewBox(3, 0, 9, 3)},
		{NewBox(0, 0, 100, 50), NewBox(10, 10, 20, 20)},
		{NewBox(0, 0, 1, 1), NewBox(2, 2, 3, 3)},
	}
	for _, pair := range pairs {
		ab := IoU(pair[0], pair[1])
		ba := IoU(pair[1], pair[0])
		if ab != ba {
			t.Errorf("IoU is not symmetric for %v and %v: %v vs %v", pair[0], pair[1], ab, ba)
		}
	}
}

func TestIoUIdentity(t *testing.T) {
	boxes := []Box{
		NewBox(0, 0, 10, 10),
		NewBox(-5, 3, 2, 4.5),
		NewBox(100, 200, 300, 250),
	}
	for _, box := range boxes {
		if answer := IoU(box, box); math.Abs(answer-1.0) > eps {
			t.Errorf("Wrong answer for %v: %v, correct answer: 1", box, answer)
		}
	}
}

func TestIoUDisjoint(t *testing.T) {
	answer := IoU(NewBox(0, 0, 1, 1), NewBox(2, 2, 3, 3))
	if answer != 0 {
		t.Errorf("Disjoint boxes should give exactly 0, got %v", answer)
	}
	// Touching edges do not overlap either
	answer = IoU(NewBox(0, 0, 1, 1), NewBox(0, 1, 1, 2))
	if answer != 0 {
		t.Errorf("Touching boxes should give exactly 0, got %v", answer)
	}
}

func TestIoUZeroUnion(t *testing.T) {
	degenerate := NewBox(3, 3, 3, 3)
	if answer := IoU(degenerate, degenerate); !math.IsNaN(answer) {
		t.Errorf("Zero union should propagate NaN, got %v", answer)
	}
}

func TestBoxSizes(t *testing.T) {
	box := NewBox(10, 20, 50, 80)
	if box.Height() != 40 {
		t.Errorf("Expected height 40, got %v", box.Height())
	}
	if box.Width() != 60 {
		t.Errorf("Expected width 60, got %v", box.Width())
	}
	if box.Area() != 2400 {
		t.Errorf("Expected area 2400, got %v", box.Area())
	}
	expectedCenter := Point{X: 50, Y: 30}
	if center := box.Center(); center != expectedCenter {
		t.Errorf("Expected center %v, got %v", expectedCenter, center)
	}
}

func TestRectangleConversion(t *testing.T) {
	rect := NewRect(10, 20, 30, 40)
	box := rect.Box()
	expected := NewBox(20, 10, 60, 40)
	if box != expected {
		t.Errorf("Expected box %v, got %v", expected, box)
	}
	if back := RectFromBox(box); back != rect {
		t.Errorf("Expected rectangle %v, got %v", rect, back)
	}

	fromImage := NewRectFrom(image.Rect(1, 2, 11, 22))
	if fromImage != NewRect(1, 2, 10, 20) {
		t.Errorf("Wrong rectangle from image bounds: %v", fromImage)
	}
}

func TestWindowFromRect(t *testing.T) {
	window := WindowFromRect(image.Rect(0, 0, 640, 480))
	expected := NewWindow(0, 0, 480, 640)
	if window != expected {
		t.Errorf("Expected window %v, got %v", expected, window)
	}
	if window.Box() != NewBox(0, 0, 480, 640) {
		t.Errorf("Wrong window box: %v", window.Box())
	}
}
