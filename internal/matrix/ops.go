package matrix

import (
	"math"
	"sync/atomic"

	"github.com/chewxy/math32"

	"github.com/born-ml/xornet/internal/parallel"
)

var kernelConfig atomic.Value // parallel.Config

func init() {
	kernelConfig.Store(parallel.DefaultConfig())
}

// SetParallel replaces the configuration used to split element kernels
// across goroutines. Results do not depend on it: every output element is
// computed by a single goroutine in the same order as a sequential run.
func SetParallel(cfg parallel.Config) {
	kernelConfig.Store(cfg)
}

func currentConfig() parallel.Config {
	return kernelConfig.Load().(parallel.Config)
}

// Dot returns the matrix product m·other.
//
// Requires m.Cols() == other.Rows(); the result is m.Rows()×other.Cols().
// Accumulation stays in float32.
func (m *Matrix) Dot(other *Matrix) *Matrix {
	if m.shape.Cols != other.shape.Rows {
		panic(&ShapeError{Op: "Dot", Left: m.shape, Right: other.shape})
	}

	rows, inner, cols := m.shape.Rows, m.shape.Cols, other.shape.Cols
	result := newMatrix(Shape{Rows: rows, Cols: cols})
	a, b, c := m.data, other.data, result.data

	parallel.ForCells(rows, cols, func(i, j int) {
		var sum float32
		for k := 0; k < inner; k++ {
			sum += a[i*inner+k] * b[k*cols+j]
		}
		c[i*cols+j] = sum
	}, currentConfig())

	return result
}

// Transpose returns a new cols×rows matrix with element [j][i] = m[i][j].
func (m *Matrix) Transpose() *Matrix {
	rows, cols := m.shape.Rows, m.shape.Cols
	result := newMatrix(m.shape.Transposed())
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.data[j*rows+i] = m.data[i*cols+j]
		}
	}
	return result
}

// Add returns the elementwise sum m + other.
func (m *Matrix) Add(other *Matrix) *Matrix {
	return m.zip("Add", other, func(a, b float32) float32 { return a + b })
}

// Sub returns the elementwise difference m - other.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	return m.zip("Sub", other, func(a, b float32) float32 { return a - b })
}

// Mul returns the elementwise (Hadamard) product m ⊙ other.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	return m.zip("Mul", other, func(a, b float32) float32 { return a * b })
}

// Div returns the elementwise quotient m / other.
// Division by zero yields ±Inf or NaN as IEEE-754 defines.
func (m *Matrix) Div(other *Matrix) *Matrix {
	return m.zip("Div", other, func(a, b float32) float32 { return a / b })
}

// SubInPlace subtracts other from m elementwise, mutating m.
// It is the only arithmetic operation that writes to its receiver.
func (m *Matrix) SubInPlace(other *Matrix) {
	requireSameShape("SubInPlace", m, other)
	for i := range m.data {
		m.data[i] -= other.data[i]
	}
}

// Scale returns a new matrix with every element multiplied by s.
func (m *Matrix) Scale(s float32) *Matrix {
	return m.Apply(func(x float32) float32 { return x * s })
}

// Exp returns the elementwise natural exponential.
func (m *Matrix) Exp() *Matrix {
	return m.Apply(math32.Exp)
}

// Apply returns a new matrix with f applied to every element.
func (m *Matrix) Apply(f func(float32) float32) *Matrix {
	result := newMatrix(m.shape)
	src, dst := m.data, result.data
	parallel.For(len(src), func(i int) {
		dst[i] = f(src[i])
	}, currentConfig())
	return result
}

// MaxOf returns a new matrix with element max(threshold, m[i][j]).
func MaxOf(threshold float32, m *Matrix) *Matrix {
	return m.Apply(func(x float32) float32 {
		if threshold > x {
			return threshold
		}
		return x
	})
}

// Equal reports whether m and other have the same shape and bit-identical
// elements. There is no tolerance.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || !m.shape.Equal(other.shape) {
		return false
	}
	for i, v := range m.data {
		if math.Float32bits(v) != math.Float32bits(other.data[i]) {
			return false
		}
	}
	return true
}

func (m *Matrix) zip(op string, other *Matrix, f func(a, b float32) float32) *Matrix {
	requireSameShape(op, m, other)
	result := newMatrix(m.shape)
	a, b, c := m.data, other.data, result.data
	parallel.For(len(a), func(i int) {
		c[i] = f(a[i], b[i])
	}, currentConfig())
	return result
}
