package dataset

import "github.com/born-ml/xornet/internal/matrix"

// XOR returns the four-sample XOR problem with identical training and
// testing splits.
//
// Inputs use -1/1 rather than 0/1. Labels are one-hot 2×1 columns: row 0
// for equal inputs, row 1 for differing inputs.
func XOR() *Set {
	samples := []*matrix.Matrix{
		matrix.FromRows(2, 1, [][]float32{{1}, {1}}),
		matrix.FromRows(2, 1, [][]float32{{-1}, {-1}}),
		matrix.FromRows(2, 1, [][]float32{{-1}, {1}}),
		matrix.FromRows(2, 1, [][]float32{{1}, {-1}}),
	}
	labels := []*matrix.Matrix{
		matrix.OneHot(2, 1, 0),
		matrix.OneHot(2, 1, 0),
		matrix.OneHot(2, 1, 1),
		matrix.OneHot(2, 1, 1),
	}

	training, err := NewSplit(samples, labels)
	if err != nil {
		panic(err) // literal data above is well formed
	}
	testing, err := NewSplit(samples, labels)
	if err != nil {
		panic(err)
	}
	return New(training, testing)
}
