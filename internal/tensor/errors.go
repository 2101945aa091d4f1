package tensor

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrRaggedRows    = errors.New("rows have different lengths")
)

// ShapeMismatchError reports an operand whose shape differs from the one
// an operation requires. It matches ErrShapeMismatch under errors.Is.
type ShapeMismatchError struct {
	Op      string // Operation that rejected the operand (e.g. "nesterov update")
	Operand string // Operand name (e.g. "dX")
	Want    Shape
	Got     Shape
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s: %v: expected %v, got %v", e.Op, e.Operand, ErrShapeMismatch, e.Want, e.Got)
}

// Is makes errors.Is(err, ErrShapeMismatch) succeed.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// CheckShape returns a *ShapeMismatchError (with stack trace) when m does not
// have shape want, and nil otherwise.
func CheckShape(op, operand string, want Shape, m mat.Matrix) error {
	got := ShapeOf(m)
	if got.Equal(want) {
		return nil
	}
	return errors.WithStack(&ShapeMismatchError{
		Op:      op,
		Operand: operand,
		Want:    want,
		Got:     got,
	})
}
