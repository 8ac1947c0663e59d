package nn

import (
	"fmt"
	"io"

	"github.com/born-ml/xornet/internal/matrix"
)

// Reporter writes human-readable progress for the display flag.
// A disabled Reporter writes nothing.
type Reporter struct {
	w       io.Writer
	enabled bool
}

// NewReporter returns a Reporter writing to w when enabled is true.
func NewReporter(w io.Writer, enabled bool) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w, enabled: enabled}
}

// Enabled reports whether output is written.
func (r *Reporter) Enabled() bool {
	return r != nil && r.enabled
}

// Round announces the start of a training attempt.
func (r *Reporter) Round(attempt int) {
	r.printf("\n\nTraining round: %d\n", attempt)
}

// Loss reports the mean loss over the last epoch of an attempt.
func (r *Reporter) Loss(loss float32) {
	r.printf("Final epoch mean loss: %.6f\n", loss)
}

// Sample prints one evaluated test pair.
func (r *Reporter) Sample(input, label, classification *matrix.Matrix) {
	r.printf("Network input:\n%v\n", input)
	r.printf("Input labels:\n%v\n", label)
	r.printf("Network classifications:\n%v\n\n", classification)
}

// Accuracy prints the aggregate accuracy as a percentage.
func (r *Reporter) Accuracy(accuracy float32) {
	r.printf("Testing resulted in a model accuracy of: %g%%", accuracy*100)
}

// Converged closes the retry loop output.
func (r *Reporter) Converged(attempts int) {
	r.printf(" after %d rounds of training.\n", attempts)
}

func (r *Reporter) printf(format string, args ...any) {
	if !r.Enabled() {
		return
	}
	fmt.Fprintf(r.w, format, args...)
}
