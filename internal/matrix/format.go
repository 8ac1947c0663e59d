package matrix

import (
	"strconv"
	"strings"
)

// String renders the matrix one row per line:
//
//	[[1, 0]
//	 [0, 1]]
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.shape.Rows; i++ {
		if i > 0 {
			sb.WriteString("\n ")
		}
		sb.WriteByte('[')
		for j := 0; j < m.shape.Cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(float64(m.data[i*m.shape.Cols+j]), 'g', -1, 32))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
