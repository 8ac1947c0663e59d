package nn

import (
	"github.com/born-ml/xornet/internal/matrix"
)

// MSELossGradient returns predicted - label.
//
// This is the gradient of the per-element squared error with the factor
// of 2 and the 1/n mean dropped; it seeds Backward directly.
func MSELossGradient(predicted, label *matrix.Matrix) *matrix.Matrix {
	return predicted.Sub(label)
}

// MSELoss computes mean((predicted - label)²).
//
// Training only needs the gradient; the scalar is reported to the user.
func MSELoss(predicted, label *matrix.Matrix) float32 {
	diff := predicted.Sub(label)
	return diff.Mul(diff).Sum() / float32(diff.Shape().NumElements())
}
