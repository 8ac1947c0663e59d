// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides (sample, label) sources for xornet.
package dataset

import (
	"github.com/born-ml/xornet/internal/dataset"
	"github.com/born-ml/xornet/internal/matrix"
)

// Source supplies training and testing pairs with wrapping cursors.
type Source = dataset.Source

// Split is one list of pairs with its cursor.
type Split = dataset.Split

// Set is a Source made of a training and a testing Split.
type Set = dataset.Set

// NewSplit pairs samples with labels.
func NewSplit(samples, labels []*matrix.Matrix) (*Split, error) {
	return dataset.NewSplit(samples, labels)
}

// New creates a Set from two splits.
func New(training, testing *Split) *Set {
	return dataset.New(training, testing)
}

// XOR returns the four-sample XOR problem.
func XOR() *Set {
	return dataset.XOR()
}
