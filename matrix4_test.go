package fxmath

import "testing"

func TestMatrix4x4ZeroValue(t *testing.T) {
	var m Matrix4x4
	for row := range 4 {
		for col := range 4 {
			if got := m.At(row, col); got != 0 {
				t.Errorf("zero Matrix4x4.At(%d, %d) = %v, want 0", row, col, got)
			}
		}
	}
	if m == Identity4() {
		t.Error("zero Matrix4x4 must not equal the identity")
	}
}

func TestMatrix4x4SetAt(t *testing.T) {
	var m Matrix4x4
	m.Set(2, 3, 7.5)
	if got := m.At(2, 3); got != 7.5 {
		t.Errorf("At(2, 3) = %v, want 7.5", got)
	}
	if got := m.Data[11]; got != 7.5 {
		t.Errorf("Data[11] = %v, want row-major storage", got)
	}
}

func TestMatrix4x4FromMatrix3x3(t *testing.T) {
	m3 := Matrix3x3{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6, G: 7, H: 8, I: 9}
	m4 := Matrix4x4FromMatrix3x3(m3)

	p3 := m3.TransformPoint(Point3D{X: 2, Y: -1, Z: 1})
	p4 := m4.TransformPoint(Point4D{X: 2, Y: -1, Z: 1, W: 1})
	if p4.X != p3.X || p4.Y != p3.Y || p4.Z != p3.Z || p4.W != 1 {
		t.Errorf("4x4 transform = %+v, want %+v with W=1", p4, p3)
	}
}

func TestMultiply4(t *testing.T) {
	a := Matrix4x4FromMatrix3x3(Translation(3, 4))
	b := Matrix4x4FromMatrix3x3(Scale(2, 5))

	if got := Multiply4(a, Identity4()); got != a {
		t.Errorf("A·I = %+v, want A", got)
	}
	if got := Identity4().Multiply(b); got != b {
		t.Errorf("I·B = %+v, want B", got)
	}

	got := Multiply4(a, b)
	want := Matrix4x4FromMatrix3x3(Translation(3, 4).Multiply(Scale(2, 5)))
	if got != want {
		t.Errorf("Multiply4() = %+v, want %+v", got, want)
	}
}

func TestMatrix4x4TransformPoint(t *testing.T) {
	var m Matrix4x4
	for i := range 16 {
		m.Data[i] = float64(i + 1)
	}
	got := m.TransformPoint(Point4D{X: 1, Y: 0, Z: 0, W: 1})
	// column 0 plus column 3
	want := Point4D{X: 1 + 4, Y: 5 + 8, Z: 9 + 12, W: 13 + 16}
	if got != want {
		t.Errorf("TransformPoint() = %+v, want %+v", got, want)
	}
}
