package matrix

// Sum returns the sum of all elements, accumulated in row-major order.
func (m *Matrix) Sum() float32 {
	var total float32
	for _, v := range m.data {
		total += v
	}
	return total
}

// RowSumBroadcast returns a matrix of the same shape in which every element
// of row i is the sum of row i of m.
//
// For a single-column matrix this is the identity. Callers that want a
// mean scale the result themselves.
func (m *Matrix) RowSumBroadcast() *Matrix {
	rows, cols := m.shape.Rows, m.shape.Cols
	result := newMatrix(m.shape)
	for i := 0; i < rows; i++ {
		var total float32
		for j := 0; j < cols; j++ {
			total += m.data[i*cols+j]
		}
		for j := 0; j < cols; j++ {
			result.data[i*cols+j] = total
		}
	}
	return result
}

// ArgmaxRow returns the row index of the largest value in column 0.
// Ties go to the lowest index.
func (m *Matrix) ArgmaxRow() int {
	cols := m.shape.Cols
	best, bestRow := m.data[0], 0
	for i := 1; i < m.shape.Rows; i++ {
		if v := m.data[i*cols]; v > best {
			best, bestRow = v, i
		}
	}
	return bestRow
}

// OneHotArgmax returns a zero matrix shaped like m with a single 1 at
// (m.ArgmaxRow(), 0).
func OneHotArgmax(m *Matrix) *Matrix {
	return OneHot(m.shape.Rows, m.shape.Cols, m.ArgmaxRow())
}
