package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/xornet/internal/matrix"
)

// scalar evaluates an elementwise matrix function at a single point.
func scalar(f func(*matrix.Matrix) *matrix.Matrix) func(float64) float64 {
	return func(x float64) float64 {
		m := matrix.Fill(float32(x), 1, 1)
		return float64(f(m).At(0, 0))
	}
}

// TestSigmoidForward tests sigmoid at known points.
func TestSigmoidForward(t *testing.T) {
	input := matrix.FromRows(1, 5, [][]float32{{-2, -1, 0, 1, 2}})
	output := Sigmoid(input)

	expected := []float32{0.1192, 0.2689, 0.5, 0.7311, 0.8808}
	for i, exp := range expected {
		got := output.At(0, i)
		if math.Abs(float64(got-exp)) > 0.001 {
			t.Errorf("Sigmoid(%v) = %v, expected %v", input.At(0, i), got, exp)
		}
	}
}

// TestSigmoidBounds checks every output lies strictly inside (0, 1).
func TestSigmoidBounds(t *testing.T) {
	input := matrix.RandomNormal(20, 5, 0, 2)
	for _, v := range Sigmoid(input).Data() {
		if v <= 0 || v >= 1 {
			t.Fatalf("Sigmoid produced %v outside (0, 1)", v)
		}
	}
}

// TestSigmoidSaturation pins the float32 limits of Sigmoid.
func TestSigmoidSaturation(t *testing.T) {
	input := matrix.FromRows(4, 1, [][]float32{{40}, {-200}, {10}, {-80}})
	output := Sigmoid(input).Data()

	assert.Equal(t, float32(1), output[0])
	assert.Equal(t, float32(0), output[1])
	assert.Less(t, output[2], float32(1))
	assert.Greater(t, output[3], float32(0))
}

// TestReLUForward tests ReLU clamps negatives to zero.
func TestReLUForward(t *testing.T) {
	input := matrix.FromRows(4, 1, [][]float32{{-3}, {0}, {0.25}, {7}})
	output := ReLU(input)

	assert.Equal(t, []float32{0, 0, 0.25, 7}, output.Data())

	for _, v := range ReLU(matrix.RandomNormal(10, 10, 0, 1)).Data() {
		if v < 0 {
			t.Fatalf("ReLU produced negative value %v", v)
		}
	}
}

// TestReLUDerivativeAtZero checks the strict x > 0 convention.
func TestReLUDerivativeAtZero(t *testing.T) {
	input := matrix.FromRows(3, 1, [][]float32{{-1}, {0}, {1}})
	assert.Equal(t, []float32{0, 0, 1}, ReLUDerivative(input).Data())
}

// TestTanhForward tests tanh is odd and bounded.
func TestTanhForward(t *testing.T) {
	input := matrix.FromRows(1, 3, [][]float32{{-1, 0, 1}})
	output := Tanh(input)

	assert.InDelta(t, -0.7616, float64(output.At(0, 0)), 1e-4)
	assert.Equal(t, float32(0), output.At(0, 1))
	assert.InDelta(t, 0.7616, float64(output.At(0, 2)), 1e-4)
}

// TestDerivativesMatchFiniteDifference compares each analytic derivative
// with a central finite difference of its activation.
func TestDerivativesMatchFiniteDifference(t *testing.T) {
	// Step is large relative to float64 defaults because the activations
	// are evaluated in float32.
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-2}

	tests := []struct {
		name       string
		f          func(*matrix.Matrix) *matrix.Matrix
		derivative func(*matrix.Matrix) *matrix.Matrix
		points     []float64
	}{
		{"sigmoid", Sigmoid, SigmoidDerivative, []float64{-4, -1.5, -0.3, 0, 0.7, 2, 5}},
		{"tanh", Tanh, TanhDerivative, []float64{-2, -0.8, 0, 0.4, 1.3, 3}},
		{"relu", ReLU, ReLUDerivative, []float64{-3, -0.5, 0.5, 2, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.points {
				numeric := fd.Derivative(scalar(tt.f), x, settings)
				analytic := scalar(tt.derivative)(x)
				assert.InDelta(t, numeric, analytic, 1e-3, "%s'(%v)", tt.name, x)
			}
		})
	}
}

// TestActivationDispatch checks the enum routes to the matching functions.
func TestActivationDispatch(t *testing.T) {
	input := matrix.FromRows(3, 1, [][]float32{{-1}, {0.5}, {2}})

	tests := []struct {
		act        Activation
		f          func(*matrix.Matrix) *matrix.Matrix
		derivative func(*matrix.Matrix) *matrix.Matrix
	}{
		{ActivationSigmoid, Sigmoid, SigmoidDerivative},
		{ActivationReLU, ReLU, ReLUDerivative},
		{ActivationTanh, Tanh, TanhDerivative},
	}

	for _, tt := range tests {
		t.Run(tt.act.String(), func(t *testing.T) {
			assert.True(t, tt.act.Apply(input).Equal(tt.f(input)))
			assert.True(t, tt.act.Derivative(input).Equal(tt.derivative(input)))
		})
	}

	assert.Panics(t, func() { Activation(42).Apply(input) })
}

func TestParseActivation(t *testing.T) {
	tests := []struct {
		name string
		want Activation
	}{
		{"sigmoid", ActivationSigmoid},
		{"ReLU", ActivationReLU},
		{" tanh ", ActivationTanh},
	}

	for _, tt := range tests {
		got, err := ParseActivation(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseActivation("softmax")
	assert.Error(t, err)

	assert.Equal(t, "relu", ActivationReLU.String())
	assert.Equal(t, "Activation(9)", Activation(9).String())
}
