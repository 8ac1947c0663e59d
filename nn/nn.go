// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/xornet/internal/dataset"
	"github.com/born-ml/xornet/internal/matrix"
	"github.com/born-ml/xornet/internal/nn"
)

// Layer is a trainable unit of a Network.
type Layer = nn.Layer

// Parameter is a trainable matrix with its last gradient.
type Parameter = nn.Parameter

// Activation selects a layer's non-linearity.
type Activation = nn.Activation

// Supported activations.
const (
	ActivationSigmoid = nn.ActivationSigmoid
	ActivationReLU    = nn.ActivationReLU
	ActivationTanh    = nn.ActivationTanh
)

// DefaultLearningRate is used when no learning rate is configured.
const DefaultLearningRate = nn.DefaultLearningRate

// ErrNotConverged is returned when GenerateModel exhausts MaxAttempts.
var ErrNotConverged = nn.ErrNotConverged

// ParseActivation resolves "sigmoid", "relu" or "tanh".
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Layers

// Linear is a fully connected layer with a fused activation.
type Linear = nn.Linear

// Initializer produces a fresh parameter matrix.
type Initializer = nn.Initializer

// NewLinear creates a layer mapping in inputs to out outputs.
//
// Example:
//
//	layer := nn.NewLinear(3, 2, nn.ActivationReLU)
func NewLinear(out, in int, activation Activation) *Linear {
	return nn.NewLinear(out, in, activation)
}

// NewLinearWithInit is NewLinear with a custom initialiser.
func NewLinearWithInit(out, in int, activation Activation, init Initializer) *Linear {
	return nn.NewLinearWithInit(out, in, activation, init)
}

// Sequential chains layers forward and backward.
type Sequential = nn.Sequential

// NewSequential creates a layer stack.
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// Training

// Network owns a data source, the layers and the training loop.
type Network = nn.Network

// Config holds Network hyperparameters.
type Config = nn.Config

// NewNetwork creates a Network over data and layers.
func NewNetwork(data dataset.Source, layers []Layer, cfg Config) *Network {
	return nn.NewNetwork(data, layers, cfg)
}

// MSELossGradient returns predicted - label.
func MSELossGradient(predicted, label *matrix.Matrix) *matrix.Matrix {
	return nn.MSELossGradient(predicted, label)
}

// MSELoss returns mean((predicted - label)²).
func MSELoss(predicted, label *matrix.Matrix) float32 {
	return nn.MSELoss(predicted, label)
}

// Activation functions

// Sigmoid applies 1 / (1 + exp(-x)).
func Sigmoid(m *matrix.Matrix) *matrix.Matrix { return nn.Sigmoid(m) }

// SigmoidDerivative applies σ(x)(1 - σ(x)).
func SigmoidDerivative(m *matrix.Matrix) *matrix.Matrix { return nn.SigmoidDerivative(m) }

// ReLU applies max(0, x).
func ReLU(m *matrix.Matrix) *matrix.Matrix { return nn.ReLU(m) }

// ReLUDerivative yields 1 where x > 0, else 0.
func ReLUDerivative(m *matrix.Matrix) *matrix.Matrix { return nn.ReLUDerivative(m) }

// Tanh applies the hyperbolic tangent.
func Tanh(m *matrix.Matrix) *matrix.Matrix { return nn.Tanh(m) }

// TanhDerivative applies 1 - tanh(x)².
func TanhDerivative(m *matrix.Matrix) *matrix.Matrix { return nn.TanhDerivative(m) }
