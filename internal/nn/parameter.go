package nn

import "github.com/born-ml/xornet/internal/matrix"

// Parameter represents a trainable matrix in a neural network.
//
// Example:
//
//	weight := nn.NewParameter("weight", matrix.RandomGaussian(3, 2))
//	weight.SetGrad(delta)
//	weight.Descend(1.02) // weight -= 1.02 * delta
type Parameter struct {
	name  string         // Parameter name (e.g., "weight", "bias")
	value *matrix.Matrix // The parameter values, owned exclusively
	grad  *matrix.Matrix // Last gradient (nil before the first backward pass)
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *matrix.Matrix {
	return p.value
}

// Grad returns the last gradient, or nil before any backward pass.
func (p *Parameter) Grad() *matrix.Matrix {
	return p.grad
}

// SetGrad sets the gradient.
func (p *Parameter) SetGrad(grad *matrix.Matrix) {
	p.grad = grad
}

// Replace swaps in new values and clears the gradient.
func (p *Parameter) Replace(value *matrix.Matrix) {
	p.value = value
	p.grad = nil
}

// Descend applies one plain gradient descent step in place:
//
//	value -= lr * grad
//
// It is a no-op when no gradient has been set.
func (p *Parameter) Descend(lr float32) {
	if p.grad == nil {
		return
	}
	p.value.SubInPlace(p.grad.Scale(lr))
}
