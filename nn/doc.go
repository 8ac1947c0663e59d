// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers and training loop of xornet.
//
// # Overview
//
// This package contains:
//   - Layers: Linear (fully connected with a fused activation)
//   - Activations: Sigmoid, ReLU, Tanh and their derivatives
//   - Loss: MSELossGradient, MSELoss
//   - Network: per-sample training, evaluation and GenerateModel
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/xornet/dataset"
//	    "github.com/born-ml/xornet/nn"
//	)
//
//	func main() {
//	    net := nn.NewNetwork(dataset.XOR(), []nn.Layer{
//	        nn.NewLinear(3, 2, nn.ActivationReLU),
//	        nn.NewLinear(3, 3, nn.ActivationReLU),
//	        nn.NewLinear(2, 3, nn.ActivationSigmoid),
//	    }, nn.Config{Epochs: 1000, Display: true})
//
//	    attempts, err := net.GenerateModel(0.98)
//	}
package nn
