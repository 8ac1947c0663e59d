package matrix

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Parameters of the weight initialisation distribution.
const (
	GaussianMean   = 0.0
	GaussianStdDev = 0.02
)

// source feeds every sampler in the package. It is seeded from the clock
// at start-up so each process draws different weights.
var source = &lockedSource{src: rand.NewSource(uint64(time.Now().UnixNano()))}

// lockedSource serialises access to a rand.Source.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// Seed reseeds the generator behind RandomGaussian and RandomNormal.
// Runs that call Seed with the same value and then build the same
// matrices in the same order draw identical values.
func Seed(seed uint64) {
	source.Seed(seed)
}

// RandomGaussian creates a rows×cols matrix of independent samples from
// Normal(GaussianMean, GaussianStdDev).
func RandomGaussian(rows, cols int) *Matrix {
	return RandomNormal(rows, cols, GaussianMean, GaussianStdDev)
}

// RandomNormal creates a rows×cols matrix of independent samples from
// Normal(mean, stddev). One sampler is shared by all elements of a call.
func RandomNormal(rows, cols int, mean, stddev float64) *Matrix {
	m := newMatrix(mustShape("RandomNormal", rows, cols))
	dist := distuv.Normal{Mu: mean, Sigma: stddev, Src: source}
	for i := range m.data {
		m.data[i] = float32(dist.Rand())
	}
	return m
}
