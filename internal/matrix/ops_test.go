package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/xornet/internal/parallel"
)

func toDense(m *Matrix) *mat.Dense {
	data := make([]float64, 0, m.Shape().NumElements())
	for _, v := range m.Data() {
		data = append(data, float64(v))
	}
	return mat.NewDense(m.Rows(), m.Cols(), data)
}

func TestDot(t *testing.T) {
	a := FromRows(2, 3, [][]float32{{1, 2, 3}, {4, 5, 6}})
	b := FromRows(3, 2, [][]float32{{7, 8}, {9, 10}, {11, 12}})

	got := a.Dot(b)
	want := FromRows(2, 2, [][]float32{{58, 64}, {139, 154}})

	assert.True(t, got.Equal(want), "got %v", got)
}

func TestDot_Shapes(t *testing.T) {
	tests := []struct {
		m, n, p int
	}{
		{1, 1, 1},
		{3, 2, 1},
		{2, 3, 4},
		{5, 1, 5},
		{7, 6, 3},
	}

	for _, tt := range tests {
		a := RandomGaussian(tt.m, tt.n)
		b := RandomGaussian(tt.n, tt.p)

		got := a.Dot(b)
		require.Equal(t, Shape{Rows: tt.m, Cols: tt.p}, got.Shape())

		var ref mat.Dense
		ref.Mul(toDense(a), toDense(b))
		for i := 0; i < tt.m; i++ {
			for j := 0; j < tt.p; j++ {
				assert.InDelta(t, ref.At(i, j), float64(got.At(i, j)), 1e-6)
			}
		}
	}
}

func TestDot_ShapeMismatch(t *testing.T) {
	assert.PanicsWithError(t, "matrix.Dot: shape mismatch 2x3 vs 2x3", func() {
		Zeros(2, 3).Dot(Zeros(2, 3))
	})
}

func TestDot_ParallelMatchesSequential(t *testing.T) {
	a := RandomGaussian(40, 30)
	b := RandomGaussian(30, 50)

	SetParallel(parallel.Sequential())
	t.Cleanup(func() { SetParallel(parallel.DefaultConfig()) })
	seq := a.Dot(b)

	SetParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1})
	par := a.Dot(b)

	assert.True(t, seq.Equal(par), "parallel product must be bit-identical")
}

func TestTranspose(t *testing.T) {
	a := FromRows(2, 3, [][]float32{{1, 2, 3}, {4, 5, 6}})
	at := a.Transpose()

	assert.Equal(t, Shape{Rows: 3, Cols: 2}, at.Shape())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(i, j), at.At(j, i))
		}
	}
	assert.True(t, at.Transpose().Equal(a))
}

func TestElementwise(t *testing.T) {
	a := FromRows(2, 2, [][]float32{{1, 2}, {3, 4}})
	b := FromRows(2, 2, [][]float32{{2, 2}, {2, 2}})

	tests := []struct {
		name string
		got  *Matrix
		want [][]float32
	}{
		{"Add", a.Add(b), [][]float32{{3, 4}, {5, 6}}},
		{"Sub", a.Sub(b), [][]float32{{-1, 0}, {1, 2}}},
		{"Mul", a.Mul(b), [][]float32{{2, 4}, {6, 8}}},
		{"Div", a.Div(b), [][]float32{{0.5, 1}, {1.5, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.Equal(FromRows(2, 2, tt.want)), "got %v", tt.got)
		})
	}

	// Operands are never mutated.
	assert.True(t, a.Equal(FromRows(2, 2, [][]float32{{1, 2}, {3, 4}})))
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := Zeros(2, 1)
	b := Zeros(1, 2)

	assert.PanicsWithError(t, "matrix.Add: shape mismatch 2x1 vs 1x2", func() { a.Add(b) })
	assert.PanicsWithError(t, "matrix.Sub: shape mismatch 2x1 vs 1x2", func() { a.Sub(b) })
	assert.PanicsWithError(t, "matrix.Mul: shape mismatch 2x1 vs 1x2", func() { a.Mul(b) })
	assert.PanicsWithError(t, "matrix.Div: shape mismatch 2x1 vs 1x2", func() { a.Div(b) })
	assert.PanicsWithError(t, "matrix.SubInPlace: shape mismatch 2x1 vs 1x2", func() { a.SubInPlace(b) })
}

func TestDiv_ByZero(t *testing.T) {
	a := FromRows(3, 1, [][]float32{{1}, {-1}, {0}})
	got := a.Div(Zeros(3, 1))

	assert.True(t, math.IsInf(float64(got.At(0, 0)), 1))
	assert.True(t, math.IsInf(float64(got.At(1, 0)), -1))
	assert.True(t, math.IsNaN(float64(got.At(2, 0))))
}

func TestSubInPlace(t *testing.T) {
	a := FromRows(2, 1, [][]float32{{5}, {3}})
	b := FromRows(2, 1, [][]float32{{1}, {4}})

	a.SubInPlace(b)

	assert.True(t, a.Equal(FromRows(2, 1, [][]float32{{4}, {-1}})))
	assert.True(t, b.Equal(FromRows(2, 1, [][]float32{{1}, {4}})), "right operand untouched")
}

func TestScale(t *testing.T) {
	a := RandomGaussian(4, 3)

	assert.True(t, a.Scale(1).Equal(a), "scaling by 1 is the identity")
	assert.True(t, a.Scale(2).Equal(a.Add(a)))
}

func TestSum(t *testing.T) {
	a := FromRows(2, 2, [][]float32{{1, 2}, {3, -4}})
	assert.Equal(t, float32(2), a.Sum())
}

func TestMaxOf(t *testing.T) {
	a := FromRows(1, 4, [][]float32{{-2, 0, 0.5, 3}})

	got := MaxOf(0, a)
	assert.Equal(t, []float32{0, 0, 0.5, 3}, got.Data())

	got = MaxOf(1, a)
	assert.Equal(t, []float32{1, 1, 1, 3}, got.Data())
}

func TestRowSumBroadcast(t *testing.T) {
	a := FromRows(2, 3, [][]float32{{1, 2, 3}, {-1, 0, 4}})
	got := a.RowSumBroadcast()

	want := FromRows(2, 3, [][]float32{{6, 6, 6}, {3, 3, 3}})
	assert.True(t, got.Equal(want), "got %v", got)

	col := FromRows(3, 1, [][]float32{{0.25}, {-1}, {2}})
	assert.True(t, col.RowSumBroadcast().Equal(col), "single column is unchanged")
}

func TestExp(t *testing.T) {
	a := FromRows(1, 3, [][]float32{{0, 1, -1}})
	got := a.Exp()

	assert.Equal(t, float32(1), got.At(0, 0))
	assert.InDelta(t, math.E, float64(got.At(0, 1)), 1e-6)
	assert.InDelta(t, 1/math.E, float64(got.At(0, 2)), 1e-6)
}

func TestApply(t *testing.T) {
	a := FromRows(1, 3, [][]float32{{1, 2, 3}})
	got := a.Apply(func(x float32) float32 { return x * x })

	assert.Equal(t, []float32{1, 4, 9}, got.Data())
	assert.Equal(t, []float32{1, 2, 3}, a.Data())
}
