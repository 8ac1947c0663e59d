// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API of the xornet dense matrix engine.
//
// # Overview
//
// Matrices are rows×cols grids of float32 stored row-major. Every
// operation checks shapes and returns a new matrix; SubInPlace and Set are
// the only mutating calls. Shape mismatches panic with a *ShapeError.
//
// # Basic Usage
//
//	w := matrix.RandomGaussian(3, 2)
//	x := matrix.FromRows(2, 1, [][]float32{{1}, {-1}})
//	h := w.Dot(x)
//	y := matrix.MaxOf(0, h)
//	class := matrix.OneHotArgmax(y)
package matrix

import (
	"github.com/born-ml/xornet/internal/matrix"
)

// Matrix is a dense rows×cols grid of float32 values.
type Matrix = matrix.Matrix

// Shape holds the dimensions of a matrix.
type Shape = matrix.Shape

// ShapeError is the panic value of operations given incompatible operands.
type ShapeError = matrix.ShapeError

// ErrShapeMismatch is wrapped by every ShapeError.
var ErrShapeMismatch = matrix.ErrShapeMismatch

// Initialisation distribution parameters.
const (
	GaussianMean   = matrix.GaussianMean
	GaussianStdDev = matrix.GaussianStdDev
)

// Zeros creates a rows×cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	return matrix.Zeros(rows, cols)
}

// Ones creates a rows×cols matrix of ones.
func Ones(rows, cols int) *Matrix {
	return matrix.Ones(rows, cols)
}

// Fill creates a rows×cols matrix with every element set to value.
func Fill(value float32, rows, cols int) *Matrix {
	return matrix.Fill(value, rows, cols)
}

// FromRows creates a matrix from nested row-major data.
func FromRows(rows, cols int, data [][]float32) *Matrix {
	return matrix.FromRows(rows, cols, data)
}

// FromSlice creates a matrix from flat row-major data.
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data)
}

// RandomGaussian samples every element from Normal(0, 0.02).
func RandomGaussian(rows, cols int) *Matrix {
	return matrix.RandomGaussian(rows, cols)
}

// OneHot creates a zero matrix with element (hot, 0) set to 1.
func OneHot(rows, cols, hot int) *Matrix {
	return matrix.OneHot(rows, cols, hot)
}

// OneHotArgmax one-hot encodes the argmax of column 0.
func OneHotArgmax(m *Matrix) *Matrix {
	return matrix.OneHotArgmax(m)
}

// MaxOf returns elementwise max(threshold, m[i][j]).
func MaxOf(threshold float32, m *Matrix) *Matrix {
	return matrix.MaxOf(threshold, m)
}
