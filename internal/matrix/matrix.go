// Package matrix implements the dense float32 matrix engine used by the
// xornet training core.
//
// A Matrix is a rectangular grid stored row-major in a flat slice. Every
// arithmetic operation is shape-checked, allocates its result and leaves
// the operands untouched. The only mutating operations are Set and
// SubInPlace. There is no implicit broadcasting; RowSumBroadcast is the
// single explicit broadcast helper.
//
// Example:
//
//	w := matrix.RandomGaussian(3, 2)
//	x := matrix.FromRows(2, 1, [][]float32{{1}, {-1}})
//	h := w.Dot(x).Add(matrix.Zeros(3, 1))
package matrix

import "fmt"

// Matrix is a dense rows×cols grid of float32 values.
//
// Matrices are handled through pointers, but no operation aliases the
// storage of its operands: use Clone when an independent copy is needed.
type Matrix struct {
	shape Shape
	data  []float32 // row-major, len == rows*cols
}

func newMatrix(shape Shape) *Matrix {
	return &Matrix{
		shape: shape,
		data:  make([]float32, shape.NumElements()),
	}
}

// Zeros creates a rows×cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	return newMatrix(mustShape("Zeros", rows, cols))
}

// Ones creates a rows×cols matrix of ones.
func Ones(rows, cols int) *Matrix {
	return Fill(1, rows, cols)
}

// Fill creates a rows×cols matrix with every element set to value.
//
// Example:
//
//	m := matrix.Fill(0.5, 2, 3)
func Fill(value float32, rows, cols int) *Matrix {
	m := newMatrix(mustShape("Fill", rows, cols))
	for i := range m.data {
		m.data[i] = value
	}
	return m
}

// FromRows creates a matrix from nested row-major literal data.
//
// data must contain exactly rows rows of cols elements each; anything
// else panics.
//
// Example:
//
//	m := matrix.FromRows(2, 1, [][]float32{{1}, {0}})
func FromRows(rows, cols int, data [][]float32) *Matrix {
	m := newMatrix(mustShape("FromRows", rows, cols))
	if len(data) != rows {
		panic(fmt.Sprintf("matrix.FromRows: expected %d rows, got %d", rows, len(data)))
	}
	for i, row := range data {
		if len(row) != cols {
			panic(fmt.Sprintf("matrix.FromRows: row %d has %d elements, expected %d", i, len(row), cols))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m
}

// FromSlice creates a matrix from flat row-major data.
// The slice is copied.
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %s requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	m := newMatrix(shape)
	copy(m.data, data)
	return m, nil
}

// RowVector creates a 1×len(data) matrix.
func RowVector(data []float32) *Matrix {
	m := newMatrix(mustShape("RowVector", 1, len(data)))
	copy(m.data, data)
	return m
}

// OneHot creates a rows×cols zero matrix with element (hot, 0) set to 1.
func OneHot(rows, cols, hot int) *Matrix {
	m := newMatrix(mustShape("OneHot", rows, cols))
	if hot < 0 || hot >= rows {
		panic(fmt.Sprintf("matrix.OneHot: hot row %d out of range [0, %d)", hot, rows))
	}
	m.data[hot*cols] = 1
	return m
}

// Shape returns the matrix dimensions.
func (m *Matrix) Shape() Shape {
	return m.shape
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.shape.Rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.shape.Cols
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float32 {
	m.checkIndex("At", i, j)
	return m.data[i*m.shape.Cols+j]
}

// Set writes v at row i, column j. It mutates m.
func (m *Matrix) Set(i, j int, v float32) {
	m.checkIndex("Set", i, j)
	m.data[i*m.shape.Cols+j] = v
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float32 {
	m.checkIndex("Row", i, 0)
	row := make([]float32, m.shape.Cols)
	copy(row, m.data[i*m.shape.Cols:(i+1)*m.shape.Cols])
	return row
}

// Data returns a copy of the row-major storage.
func (m *Matrix) Data() []float32 {
	out := make([]float32, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns an independent deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := newMatrix(m.shape)
	copy(c.data, m.data)
	return c
}

func (m *Matrix) checkIndex(op string, i, j int) {
	if i < 0 || i >= m.shape.Rows || j < 0 || j >= m.shape.Cols {
		panic(fmt.Sprintf("matrix.%s: index (%d, %d) out of range for %s", op, i, j, m.shape))
	}
}
