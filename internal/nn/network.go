package nn

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/xornet/internal/dataset"
	"github.com/born-ml/xornet/internal/matrix"
)

// ErrNotConverged is returned by GenerateModel when MaxAttempts runs out
// before the accuracy target is met.
var ErrNotConverged = errors.New("model did not reach the target accuracy")

// Config holds the training hyperparameters of a Network.
type Config struct {
	Epochs       int       // Passes over the training set per attempt.
	LearningRate float32   // Step size for every layer (default: DefaultLearningRate).
	MaxAttempts  int       // Cap for GenerateModel; 0 means unlimited.
	Display      bool      // Print per-sample results and accuracy.
	Output       io.Writer // Destination for Display output (default: os.Stdout).
}

// Network owns a data source, a stack of layers and the training loop.
//
// Example:
//
//	net := nn.NewNetwork(dataset.XOR(), []nn.Layer{
//	    nn.NewLinear(3, 2, nn.ActivationReLU),
//	    nn.NewLinear(3, 3, nn.ActivationReLU),
//	    nn.NewLinear(2, 3, nn.ActivationSigmoid),
//	}, nn.Config{Epochs: 1000})
//	attempts, err := net.GenerateModel(0.98)
type Network struct {
	data     dataset.Source
	stack    *Sequential
	epochs   int
	lr       float32
	attempts int
	report   *Reporter
}

// NewNetwork creates a Network and propagates the learning rate to every
// layer.
func NewNetwork(data dataset.Source, layers []Layer, cfg Config) *Network {
	if cfg.LearningRate == 0 {
		cfg.LearningRate = DefaultLearningRate
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	stack := NewSequential(layers...)
	stack.SetLearningRate(cfg.LearningRate)

	return &Network{
		data:     data,
		stack:    stack,
		epochs:   cfg.Epochs,
		lr:       cfg.LearningRate,
		attempts: cfg.MaxAttempts,
		report:   NewReporter(cfg.Output, cfg.Display),
	}
}

// Forward pushes input through every layer.
func (n *Network) Forward(input *matrix.Matrix) *matrix.Matrix {
	return n.stack.Forward(input)
}

// Backward pushes a loss gradient back through every layer, updating all
// parameters.
func (n *Network) Backward(lossGrad *matrix.Matrix) {
	n.stack.Backward(lossGrad)
}

// Classify one-hot encodes the argmax of the network output.
func (n *Network) Classify(input *matrix.Matrix) *matrix.Matrix {
	return matrix.OneHotArgmax(n.Forward(input))
}

// Train runs the configured number of epochs. Each epoch draws
// TrainingSetSize pairs in cursor order and updates after every pair.
//
// Returns the mean loss over the last epoch, or 0 when no epoch ran.
func (n *Network) Train() float32 {
	size := n.data.TrainingSetSize()
	var epochLoss float32

	for epoch := 0; epoch < n.epochs; epoch++ {
		epochLoss = 0
		for i := 0; i < size; i++ {
			input, label := n.data.NextTraining()

			output := n.Forward(input)
			epochLoss += MSELoss(output, label)

			n.Backward(MSELossGradient(output, label))
		}
	}

	if n.epochs == 0 || size == 0 {
		return 0
	}
	return epochLoss / float32(size)
}

// Test classifies TrainingSetSize pairs from the testing cursor and
// returns the fraction whose classification equals the label exactly.
func (n *Network) Test() float32 {
	size := n.data.TrainingSetSize()
	correct := 0

	for i := 0; i < size; i++ {
		input, label := n.data.NextTesting()
		classification := n.Classify(input)

		n.report.Sample(input, label, classification)

		if classification.Equal(label) {
			correct++
		}
	}

	accuracy := float32(correct) / float32(size)
	n.report.Accuracy(accuracy)
	return accuracy
}

// ResetModel redraws the parameters of every layer.
func (n *Network) ResetModel() {
	n.stack.Reset()
}

// GenerateModel repeats reset, Train and Test until Test reaches
// minAccuracy, and returns the number of attempts used.
//
// With MaxAttempts == 0 this only returns on success and can loop forever
// for an architecture that cannot learn the data. Otherwise it gives up
// after MaxAttempts and returns an error wrapping ErrNotConverged.
func (n *Network) GenerateModel(minAccuracy float32) (int, error) {
	for attempt := 1; ; attempt++ {
		n.report.Round(attempt)

		n.ResetModel()
		loss := n.Train()
		n.report.Loss(loss)

		accuracy := n.Test()
		if accuracy >= minAccuracy {
			n.report.Converged(attempt)
			return attempt, nil
		}

		if n.attempts > 0 && attempt >= n.attempts {
			return attempt, fmt.Errorf("after %d attempts accuracy %.2f < %.2f: %w",
				attempt, accuracy, minAccuracy, ErrNotConverged)
		}
	}
}

// Layers returns the layers in forward order.
func (n *Network) Layers() []Layer {
	return n.stack.Layers()
}

// Parameters returns every trainable parameter of the network.
func (n *Network) Parameters() []*Parameter {
	return n.stack.Parameters()
}

// Epochs returns the number of epochs per attempt.
func (n *Network) Epochs() int {
	return n.epochs
}

// LearningRate returns the step size propagated to the layers.
func (n *Network) LearningRate() float32 {
	return n.lr
}
