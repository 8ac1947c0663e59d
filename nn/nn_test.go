package nn_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/xornet/dataset"
	"github.com/born-ml/xornet/matrix"
	"github.com/born-ml/xornet/nn"
)

func TestPublicAPI(t *testing.T) {
	layers := []nn.Layer{
		nn.NewLinear(3, 2, nn.ActivationReLU),
		nn.NewLinearWithInit(2, 3, nn.ActivationSigmoid, func(rows, cols int) *matrix.Matrix {
			return matrix.Fill(0.1, rows, cols)
		}),
	}
	net := nn.NewNetwork(dataset.XOR(), layers, nn.Config{Epochs: 1})

	out := net.Forward(matrix.FromRows(2, 1, [][]float32{{1}, {1}}))
	assert.Equal(t, matrix.Shape{Rows: 2, Cols: 1}, out.Shape())
	assert.Len(t, net.Parameters(), 4)

	grad := nn.MSELossGradient(out, matrix.OneHot(2, 1, 0))
	assert.Equal(t, out.At(0, 0)-1, grad.At(0, 0))
}

func ExampleParseActivation() {
	act, err := nn.ParseActivation("relu")
	if err != nil {
		panic(err)
	}
	fmt.Println(act, nn.ReLU(matrix.FromRows(1, 2, [][]float32{{-1, 2}})))
	// Output: relu [[0, 2]]
}
