package nn

import (
	"github.com/born-ml/xornet/internal/matrix"
)

// Sequential chains layers: each layer's output is the next layer's input
// on the way forward, and gradients flow through them in reverse on the
// way back.
//
// Layer shapes must compose (layer i's out == layer i+1's in); a mismatch
// surfaces as a matrix shape panic on the first Forward.
//
// Example:
//
//	stack := nn.NewSequential(
//	    nn.NewLinear(3, 2, nn.ActivationReLU),
//	    nn.NewLinear(2, 3, nn.ActivationSigmoid),
//	)
//	out := stack.Forward(x)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a new Sequential container.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{
		layers: layers,
	}
}

// Forward applies all layers in order and returns the last activation.
func (s *Sequential) Forward(input *matrix.Matrix) *matrix.Matrix {
	output := input

	for _, layer := range s.layers {
		output = layer.Forward(output)
	}

	return output
}

// Backward runs every layer's Backward in reverse order, threading each
// returned gradient into the preceding layer.
func (s *Sequential) Backward(grad *matrix.Matrix) {
	next := grad

	for i := len(s.layers) - 1; i >= 0; i-- {
		next = s.layers[i].Backward(next)
	}
}

// Reset redraws the parameters of every layer.
func (s *Sequential) Reset() {
	for _, layer := range s.layers {
		layer.Reset()
	}
}

// SetLearningRate propagates lr to every layer.
func (s *Sequential) SetLearningRate(lr float32) {
	for _, layer := range s.layers {
		layer.SetLearningRate(lr)
	}
}

// Parameters returns all trainable parameters from all layers.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter

	for _, layer := range s.layers {
		params = append(params, layer.Parameters()...)
	}

	return params
}

// Layers returns the layers in forward order.
func (s *Sequential) Layers() []Layer {
	return s.layers
}

// Len returns the number of layers.
func (s *Sequential) Len() int {
	return len(s.layers)
}
