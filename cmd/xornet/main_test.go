package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrain_Quiet(t *testing.T) {
	if testing.Short() {
		t.Skip("stochastic convergence test")
	}

	var buf bytes.Buffer
	err := train([]string{"-display=false", "-max-attempts=50"}, &buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rounds of training.")
	assert.NotContains(t, buf.String(), "Network input")
}

func TestTrain_AttemptCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	cfg := `
epochs: 1
min_accuracy: 1
max_attempts: 1
display: false
layers:
  - {out: 2, in: 2, activation: sigmoid}
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	// One epoch on a linear model cannot separate XOR.
	err := train([]string{"-config", path}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTrain_SeedReproducible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	cfg := `
epochs: 5
min_accuracy: 1
max_attempts: 2
layers:
  - {out: 2, in: 2, activation: sigmoid}
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	run := func() string {
		var buf bytes.Buffer
		err := train([]string{"-config", path, "-seed", "42"}, &buf)
		require.Error(t, err)
		return buf.String()
	}

	first := run()
	assert.Contains(t, first, "Final epoch mean loss")
	assert.Equal(t, first, run())
}

func TestTrain_BadFlags(t *testing.T) {
	err := train([]string{"-epochs", "abc"}, &bytes.Buffer{})
	assert.Error(t, err)

	err = train([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	usage(&buf)
	assert.Contains(t, buf.String(), "train")
	assert.Contains(t, buf.String(), version)
}
