// Package config loads the run configuration for xornet training.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/xornet/internal/nn"
)

// LayerConfig describes one fully connected layer.
type LayerConfig struct {
	Out        int    `yaml:"out"`
	In         int    `yaml:"in"`
	Activation string `yaml:"activation"`
}

// Config captures the knobs for a training run.
type Config struct {
	Epochs       int           `yaml:"epochs"`
	LearningRate float32       `yaml:"learning_rate"`
	MinAccuracy  float32       `yaml:"min_accuracy"`
	MaxAttempts  int           `yaml:"max_attempts"`
	Display      bool          `yaml:"display"`
	Parallel     bool          `yaml:"parallel"`
	Seed         uint64        `yaml:"seed"` // 0 seeds from the clock
	Layers       []LayerConfig `yaml:"layers"`
}

// Overrides captures CLI supplied values. Zero values leave the config
// untouched; Display is applied only when DisplaySet is true.
type Overrides struct {
	Epochs       int
	LearningRate float32
	MinAccuracy  float32
	MaxAttempts  int
	Display      bool
	DisplaySet   bool
	Seed         uint64
}

// Default returns the reference XOR setup: 2 → 3 relu → 3 relu → 2 sigmoid,
// 1000 epochs per attempt, learning rate 1.02, target accuracy 0.98 and no
// attempt cap.
func Default() *Config {
	return &Config{
		Epochs:       1000,
		LearningRate: nn.DefaultLearningRate,
		MinAccuracy:  0.98,
		Display:      true,
		Layers: []LayerConfig{
			{Out: 3, In: 2, Activation: "relu"},
			{Out: 3, In: 3, Activation: "relu"},
			{Out: 2, In: 3, Activation: "sigmoid"},
		},
	}
}

// Load reads and validates a Config from a YAML file. Fields missing from
// the file keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of Default and validates the result.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.MinAccuracy > 0 {
		c.MinAccuracy = o.MinAccuracy
	}
	if o.MaxAttempts > 0 {
		c.MaxAttempts = o.MaxAttempts
	}
	if o.Seed > 0 {
		c.Seed = o.Seed
	}
	if o.DisplaySet {
		c.Display = o.Display
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c.Epochs <= 0 {
		return errors.New("config: epochs must be > 0")
	}
	if c.LearningRate <= 0 {
		return errors.New("config: learning_rate must be > 0")
	}
	if c.MinAccuracy <= 0 || c.MinAccuracy > 1 {
		return fmt.Errorf("config: min_accuracy %v must be in (0, 1]", c.MinAccuracy)
	}
	if c.MaxAttempts < 0 {
		return errors.New("config: max_attempts must be >= 0")
	}
	if len(c.Layers) == 0 {
		return errors.New("config: at least one layer is required")
	}
	for i, l := range c.Layers {
		if l.Out <= 0 || l.In <= 0 {
			return fmt.Errorf("config: layer %d has invalid shape %dx%d", i, l.Out, l.In)
		}
		if _, err := nn.ParseActivation(l.Activation); err != nil {
			return fmt.Errorf("config: layer %d: %w", i, err)
		}
		if i > 0 && c.Layers[i-1].Out != l.In {
			return fmt.Errorf("config: layer %d expects %d inputs but layer %d produces %d",
				i, l.In, i-1, c.Layers[i-1].Out)
		}
	}
	return nil
}

// BuildLayers constructs the configured layers. Call Validate first.
func (c *Config) BuildLayers() ([]nn.Layer, error) {
	layers := make([]nn.Layer, 0, len(c.Layers))
	for i, l := range c.Layers {
		act, err := nn.ParseActivation(l.Activation)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers = append(layers, nn.NewLinear(l.Out, l.In, act))
	}
	return layers, nil
}

// NetworkConfig converts the hyperparameters for nn.NewNetwork.
func (c *Config) NetworkConfig(out io.Writer) nn.Config {
	return nn.Config{
		Epochs:       c.Epochs,
		LearningRate: c.LearningRate,
		MaxAttempts:  c.MaxAttempts,
		Display:      c.Display,
		Output:       out,
	}
}
