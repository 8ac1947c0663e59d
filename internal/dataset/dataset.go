// Package dataset supplies (sample, label) pairs to the training loop.
//
// Each split keeps its own cursor that increases on every draw and wraps
// modulo the split size, so a Source can be drawn from forever.
package dataset

import (
	"errors"
	"fmt"

	"github.com/born-ml/xornet/internal/matrix"
)

// Source is what a Network consumes.
type Source interface {
	// NextTraining returns the next training pair and advances the cursor.
	NextTraining() (sample, label *matrix.Matrix)

	// NextTesting returns the next testing pair and advances the cursor.
	NextTesting() (sample, label *matrix.Matrix)

	// TrainingSetSize is the number of distinct training pairs.
	TrainingSetSize() int

	// TestingSetSize is the number of distinct testing pairs.
	TestingSetSize() int
}

// Split is one list of (sample, label) pairs with a wrapping cursor.
type Split struct {
	samples []*matrix.Matrix
	labels  []*matrix.Matrix
	cursor  int
}

// NewSplit pairs samples with labels. Both lists must be non-empty and
// of equal length, and all samples (and all labels) must share one shape.
func NewSplit(samples, labels []*matrix.Matrix) (*Split, error) {
	if len(samples) == 0 {
		return nil, errors.New("split has no samples")
	}
	if len(samples) != len(labels) {
		return nil, fmt.Errorf("split has %d samples but %d labels", len(samples), len(labels))
	}
	for i := 1; i < len(samples); i++ {
		if !samples[i].Shape().Equal(samples[0].Shape()) {
			return nil, fmt.Errorf("sample %d has shape %s, expected %s", i, samples[i].Shape(), samples[0].Shape())
		}
		if !labels[i].Shape().Equal(labels[0].Shape()) {
			return nil, fmt.Errorf("label %d has shape %s, expected %s", i, labels[i].Shape(), labels[0].Shape())
		}
	}

	s := &Split{
		samples: make([]*matrix.Matrix, len(samples)),
		labels:  make([]*matrix.Matrix, len(labels)),
	}
	for i := range samples {
		s.samples[i] = samples[i].Clone()
		s.labels[i] = labels[i].Clone()
	}
	return s, nil
}

// Next returns copies of the pair under the cursor and advances it.
func (s *Split) Next() (sample, label *matrix.Matrix) {
	i := s.cursor % len(s.samples)
	s.cursor++
	return s.samples[i].Clone(), s.labels[i].Clone()
}

// Len returns the number of pairs.
func (s *Split) Len() int {
	return len(s.samples)
}

// Cursor returns the number of draws so far.
func (s *Split) Cursor() int {
	return s.cursor
}

// Set is a Source built from a training and a testing Split.
type Set struct {
	training *Split
	testing  *Split
}

// New creates a Set from two splits.
func New(training, testing *Split) *Set {
	return &Set{training: training, testing: testing}
}

// NextTraining returns the next training pair.
func (s *Set) NextTraining() (sample, label *matrix.Matrix) {
	return s.training.Next()
}

// NextTesting returns the next testing pair.
func (s *Set) NextTesting() (sample, label *matrix.Matrix) {
	return s.testing.Next()
}

// TrainingSetSize returns the number of training pairs.
func (s *Set) TrainingSetSize() int {
	return s.training.Len()
}

// TestingSetSize returns the number of testing pairs.
func (s *Set) TestingSetSize() int {
	return s.testing.Len()
}
