package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Shape represents the dimensions of a 2-D matrix.
type Shape struct {
	Rows int
	Cols int
}

// ShapeOf returns the shape of m.
//
// A nil matrix and an empty *mat.Dense both report Shape{0, 0}.
func ShapeOf(m mat.Matrix) Shape {
	if m == nil {
		return Shape{}
	}
	if d, ok := m.(*mat.Dense); ok && (d == nil || d.IsEmpty()) {
		return Shape{}
	}
	r, c := m.Dims()
	return Shape{Rows: r, Cols: c}
}

// NumElements returns the total number of entries.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// IsEmpty reports whether the shape holds no entries.
func (s Shape) IsEmpty() bool {
	return s.Rows == 0 || s.Cols == 0
}

// Validate checks that no dimension is negative.
func (s Shape) Validate() error {
	if s.Rows < 0 {
		return fmt.Errorf("invalid rows: %d (must be >= 0)", s.Rows)
	}
	if s.Cols < 0 {
		return fmt.Errorf("invalid cols: %d (must be >= 0)", s.Cols)
	}
	return nil
}

// Equal checks if two shapes are equal.
//
// All empty shapes compare equal, since gonum stores every empty matrix
// as 0×0.
func (s Shape) Equal(other Shape) bool {
	if s.IsEmpty() && other.IsEmpty() {
		return true
	}
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// String formats the shape as rows×cols.
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}
