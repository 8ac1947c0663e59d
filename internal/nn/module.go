// Package nn implements the layer and network engine of xornet.
//
// This package provides:
//   - Layer interface: a trainable unit with forward/backward passes
//   - Parameter: a trainable matrix with its last gradient
//   - Linear: fully connected layer with a fused activation
//   - Activations: Sigmoid, ReLU, Tanh and their derivatives
//   - Sequential: ordered layer stack
//   - Network: training loop, evaluation and the retry-until-accurate loop
//
// All computation is synchronous and unbatched: each sample is pushed
// forward, its loss gradient pushed backward, and parameters updated
// before the next sample is drawn.
package nn

import "github.com/born-ml/xornet/internal/matrix"

// Layer is a trainable unit of a Network.
//
// Forward caches whatever Backward needs. Backward consumes those caches,
// updates the layer's parameters and returns the gradient for the previous
// layer. Calling Backward before any Forward is a programming error.
type Layer interface {
	// Forward maps an in×1 input to an out×1 activation.
	Forward(input *matrix.Matrix) *matrix.Matrix

	// Backward takes the gradient of the loss with respect to this layer's
	// output and returns the gradient with respect to its input.
	Backward(downstream *matrix.Matrix) *matrix.Matrix

	// Reset redraws all parameters from the initialiser.
	Reset()

	// SetLearningRate sets the step size used by Backward.
	SetLearningRate(lr float32)

	// Parameters returns the trainable parameters of this layer.
	Parameters() []*Parameter
}
