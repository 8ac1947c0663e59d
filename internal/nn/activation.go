package nn

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/born-ml/xornet/internal/matrix"
)

// Activation selects the elementwise non-linearity of a layer.
// It is fixed when the layer is constructed.
type Activation int

// Supported activations.
const (
	ActivationSigmoid Activation = iota
	ActivationReLU
	ActivationTanh
)

// String returns the configuration name of the activation.
func (a Activation) String() string {
	switch a {
	case ActivationSigmoid:
		return "sigmoid"
	case ActivationReLU:
		return "relu"
	case ActivationTanh:
		return "tanh"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation resolves a configuration name (case-insensitive).
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sigmoid":
		return ActivationSigmoid, nil
	case "relu":
		return ActivationReLU, nil
	case "tanh":
		return ActivationTanh, nil
	default:
		return 0, fmt.Errorf("unknown activation %q (want sigmoid, relu or tanh)", name)
	}
}

// Apply evaluates the activation on every element of m.
func (a Activation) Apply(m *matrix.Matrix) *matrix.Matrix {
	switch a {
	case ActivationSigmoid:
		return Sigmoid(m)
	case ActivationReLU:
		return ReLU(m)
	case ActivationTanh:
		return Tanh(m)
	default:
		panic(fmt.Sprintf("nn: unsupported activation %v", a))
	}
}

// Derivative evaluates the activation's derivative on every element of m.
// m is the pre-activation (hypothesis), not the activated output.
func (a Activation) Derivative(m *matrix.Matrix) *matrix.Matrix {
	switch a {
	case ActivationSigmoid:
		return SigmoidDerivative(m)
	case ActivationReLU:
		return ReLUDerivative(m)
	case ActivationTanh:
		return TanhDerivative(m)
	default:
		panic(fmt.Sprintf("nn: unsupported activation %v", a))
	}
}

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)).
//
// Outputs lie strictly inside (0, 1) only for moderate inputs. In float32
// the result saturates to exactly 1 above x ≈ 17 and to exactly 0 below
// x ≈ -88, where exp(-x) overflows to +Inf.
func Sigmoid(m *matrix.Matrix) *matrix.Matrix {
	ones := matrix.Ones(m.Rows(), m.Cols())
	return ones.Div(ones.Add(m.Scale(-1).Exp()))
}

// SigmoidDerivative applies σ(x) * (1 - σ(x)).
func SigmoidDerivative(m *matrix.Matrix) *matrix.Matrix {
	ones := matrix.Ones(m.Rows(), m.Cols())
	s := Sigmoid(m)
	return s.Mul(ones.Sub(s))
}

// ReLU applies max(0, x).
func ReLU(m *matrix.Matrix) *matrix.Matrix {
	return matrix.MaxOf(0, m)
}

// ReLUDerivative yields 1 where x > 0 and 0 elsewhere, including x == 0.
func ReLUDerivative(m *matrix.Matrix) *matrix.Matrix {
	return m.Apply(func(x float32) float32 {
		if x > 0 {
			return 1
		}
		return 0
	})
}

// Tanh applies the hyperbolic tangent.
func Tanh(m *matrix.Matrix) *matrix.Matrix {
	return m.Apply(math32.Tanh)
}

// TanhDerivative applies 1 - tanh(x)².
func TanhDerivative(m *matrix.Matrix) *matrix.Matrix {
	return m.Apply(func(x float32) float32 {
		t := math32.Tanh(x)
		return 1 - t*t
	})
}
