// Package main provides the xornet CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/xornet/internal/config"
	"github.com/born-ml/xornet/internal/dataset"
	"github.com/born-ml/xornet/internal/matrix"
	"github.com/born-ml/xornet/internal/nn"
	"github.com/born-ml/xornet/internal/parallel"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("xornet %s\n", version)
	case "train":
		if err := train(os.Args[2:], os.Stdout); err != nil {
			log.Fatalf("train: %v", err)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "xornet - backpropagation on the XOR problem")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train until the target accuracy is reached")
}

func train(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML run configuration (default: built-in XOR setup)")
	epochs := fs.Int("epochs", 0, "Epochs per training attempt")
	lr := fs.Float64("lr", 0, "Learning rate")
	accuracy := fs.Float64("accuracy", 0, "Minimum accuracy to stop retrying")
	maxAttempts := fs.Int("max-attempts", 0, "Give up after this many attempts (0 = unlimited)")
	seed := fs.Uint64("seed", 0, "Seed for weight initialisation (0 = seed from the clock)")
	display := fs.Bool("display", true, "Print per-sample classifications and accuracy")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	displaySet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "display" {
			displaySet = true
		}
	})
	cfg.ApplyOverrides(config.Overrides{
		Epochs:       *epochs,
		LearningRate: float32(*lr),
		MinAccuracy:  float32(*accuracy),
		MaxAttempts:  *maxAttempts,
		Display:      *display,
		DisplaySet:   displaySet,
		Seed:         *seed,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Parallel {
		matrix.SetParallel(parallel.DefaultConfig())
	} else {
		matrix.SetParallel(parallel.Sequential())
	}

	if cfg.Seed != 0 {
		matrix.Seed(cfg.Seed)
	}

	layers, err := cfg.BuildLayers()
	if err != nil {
		return err
	}

	net := nn.NewNetwork(dataset.XOR(), layers, cfg.NetworkConfig(out))
	attempts, err := net.GenerateModel(cfg.MinAccuracy)
	if err != nil {
		return err
	}

	if !cfg.Display {
		fmt.Fprintf(out, "Reached accuracy >= %g after %d rounds of training.\n", cfg.MinAccuracy, attempts)
	}
	return nil
}
