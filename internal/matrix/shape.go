package matrix

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is the sentinel wrapped by every ShapeError.
var ErrShapeMismatch = errors.New("shape mismatch")

// Shape holds the dimensions of a matrix.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns rows*cols.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks that both dimensions are positive.
func (s Shape) Validate() error {
	if s.Rows <= 0 {
		return fmt.Errorf("invalid rows: %d (must be > 0)", s.Rows)
	}
	if s.Cols <= 0 {
		return fmt.Errorf("invalid cols: %d (must be > 0)", s.Cols)
	}
	return nil
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// Transposed returns the shape with rows and cols swapped.
func (s Shape) Transposed() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// ShapeError describes an operation that received incompatible operands.
//
// Matrix operations panic with a *ShapeError rather than returning it:
// a mismatch is a wiring bug in the caller and there is nothing sensible
// to continue with. Recover and use errors.Is(err, ErrShapeMismatch) if
// you need to inspect it.
type ShapeError struct {
	Op    string
	Left  Shape
	Right Shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix.%s: %s %s vs %s", e.Op, ErrShapeMismatch, e.Left, e.Right)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// requireSameShape panics unless a and b have identical dimensions.
func requireSameShape(op string, a, b *Matrix) {
	if !a.shape.Equal(b.shape) {
		panic(&ShapeError{Op: op, Left: a.shape, Right: b.shape})
	}
}

// mustShape panics if the requested shape is not usable.
func mustShape(op string, rows, cols int) Shape {
	s := Shape{Rows: rows, Cols: cols}
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("matrix.%s: %v", op, err))
	}
	return s
}
