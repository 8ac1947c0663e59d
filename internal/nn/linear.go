package nn

import (
	"github.com/born-ml/xornet/internal/matrix"
)

// DefaultLearningRate is the gradient descent step size used when none is
// configured.
const DefaultLearningRate float32 = 1.02

// Linear implements a fully connected layer with a fused activation.
//
// Performs the transformation: y = f(W·x + b)
// where:
//   - x is the input column with shape [in, 1]
//   - W is the weight matrix with shape [out, in]
//   - b is the bias column with shape [out, 1]
//   - f is the layer's Activation
//
// Forward caches x and the hypothesis W·x + b; Backward consumes them.
// A second Backward without an intervening Forward reuses the stale
// caches; this is not guarded.
//
// Example:
//
//	layer := nn.NewLinear(3, 2, nn.ActivationReLU)
//	out := layer.Forward(matrix.FromRows(2, 1, [][]float32{{1}, {-1}}))
type Linear struct {
	inDim      int
	outDim     int
	weight     *Parameter // [out, in]
	bias       *Parameter // [out, 1]
	activation Activation
	lr         float32
	init       Initializer

	inputCache      *matrix.Matrix
	hypothesisCache *matrix.Matrix
}

// NewLinear creates a layer mapping in inputs to out outputs, with weights
// and biases drawn from Normal(0, 0.02).
func NewLinear(out, in int, activation Activation) *Linear {
	return NewLinearWithInit(out, in, activation, Gaussian)
}

// NewLinearWithInit is NewLinear with a custom parameter initialiser,
// used for both construction and Reset.
func NewLinearWithInit(out, in int, activation Activation, init Initializer) *Linear {
	return &Linear{
		inDim:      in,
		outDim:     out,
		weight:     NewParameter("weight", init(out, in)),
		bias:       NewParameter("bias", init(out, 1)),
		activation: activation,
		lr:         DefaultLearningRate,
		init:       init,
	}
}

// Forward computes f(W·x + b) and caches x and W·x + b.
//
// Input shape: [in, 1]
// Output shape: [out, 1]
func (l *Linear) Forward(input *matrix.Matrix) *matrix.Matrix {
	hypothesis := l.weight.Value().Dot(input).Add(l.bias.Value())

	l.inputCache = input.Clone()
	l.hypothesisCache = hypothesis
	return l.activation.Apply(hypothesis)
}

// Backward propagates downstream (shape [out, 1]) through the layer,
// updates W and b in place, and returns the gradient for the previous
// layer (shape [in, 1]).
//
// The returned gradient is computed with the weights as they were before
// this update.
func (l *Linear) Backward(downstream *matrix.Matrix) *matrix.Matrix {
	if l.inputCache == nil || l.hypothesisCache == nil {
		panic("nn.Linear.Backward: called before Forward")
	}

	gradHypothesis := downstream.Mul(l.activation.Derivative(l.hypothesisCache))

	weightDelta := gradHypothesis.Dot(l.inputCache.Transpose())

	// Row sum scaled by 1/rows, so each bias moves by lr/out times its
	// gradient. Kept as is; this is not a correct batch mean.
	biasDelta := gradHypothesis.RowSumBroadcast().Scale(1 / float32(gradHypothesis.Rows()))

	next := l.weight.Value().Transpose().Dot(gradHypothesis)

	l.weight.SetGrad(weightDelta)
	l.bias.SetGrad(biasDelta)
	l.weight.Descend(l.lr)
	l.bias.Descend(l.lr)

	return next
}

// Reset redraws weights and biases from the initialiser.
// Caches are left as they are.
func (l *Linear) Reset() {
	l.weight.Replace(l.init(l.outDim, l.inDim))
	l.bias.Replace(l.init(l.outDim, 1))
}

// SetLearningRate sets the step size used by Backward.
func (l *Linear) SetLearningRate(lr float32) {
	l.lr = lr
}

// LearningRate returns the step size used by Backward.
func (l *Linear) LearningRate() float32 {
	return l.lr
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InDim returns the number of inputs.
func (l *Linear) InDim() int {
	return l.inDim
}

// OutDim returns the number of outputs.
func (l *Linear) OutDim() int {
	return l.outDim
}

// Activation returns the layer's activation.
func (l *Linear) Activation() Activation {
	return l.activation
}
