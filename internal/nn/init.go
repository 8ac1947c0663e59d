package nn

import "github.com/born-ml/xornet/internal/matrix"

// Initializer produces a fresh rows×cols parameter matrix.
type Initializer func(rows, cols int) *matrix.Matrix

// Gaussian draws every element from Normal(0, 0.02).
// It is the default initialiser for weights and biases.
func Gaussian(rows, cols int) *matrix.Matrix {
	return matrix.RandomGaussian(rows, cols)
}

// Constant returns an Initializer that fills with value.
// Useful for reproducible tests.
func Constant(value float32) Initializer {
	return func(rows, cols int) *matrix.Matrix {
		return matrix.Fill(value, rows, cols)
	}
}
