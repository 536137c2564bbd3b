package classify

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Digits is the number of classes, 0 through 9.
const Digits = 10

// ConfusionMatrix counts predictions as cells[predicted][actual].
//
// The zero value is an empty matrix ready for use.
type ConfusionMatrix struct {
	cells [Digits][Digits]int
}

// NewConfusionMatrix returns an empty matrix.
func NewConfusionMatrix() *ConfusionMatrix {
	return &ConfusionMatrix{}
}

// Add records one sample whose true digit is actual and which was predicted
// as predicted.
func (m *ConfusionMatrix) Add(predicted, actual int) error {
	if predicted < 0 || predicted >= Digits || actual < 0 || actual >= Digits {
		return fmt.Errorf("%w: predicted=%d actual=%d", ErrLabelRange, predicted, actual)
	}
	m.cells[predicted][actual]++
	return nil
}

// At returns the count of samples of digit actual predicted as predicted.
func (m *ConfusionMatrix) At(predicted, actual int) int {
	return m.cells[predicted][actual]
}

// Reset clears every count.
func (m *ConfusionMatrix) Reset() {
	m.cells = [Digits][Digits]int{}
}

// Total returns the number of recorded samples.
func (m *ConfusionMatrix) Total() int {
	total := 0
	for p := 0; p < Digits; p++ {
		for a := 0; a < Digits; a++ {
			total += m.cells[p][a]
		}
	}
	return total
}

// Correct returns the number of samples predicted as their own digit.
func (m *ConfusionMatrix) Correct() int {
	correct := 0
	for d := 0; d < Digits; d++ {
		correct += m.cells[d][d]
	}
	return correct
}

// Rate returns the recognition rate as a whole percentage, rounded down.
// An empty matrix has a rate of 0.
func (m *ConfusionMatrix) Rate() int {
	total := m.Total()
	if total == 0 {
		return 0
	}
	return m.Correct() * 100 / total
}

// WriteTo renders the matrix with a digit header row, one row per predicted
// digit and a closing line with the recognition rate.
func (m *ConfusionMatrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat("-", 31)

	var n int
	write := func(format string, args ...interface{}) {
		k, _ := fmt.Fprintf(bw, format, args...)
		n += k
	}

	header := make([]string, Digits)
	for a := range header {
		header[a] = fmt.Sprint(a)
	}
	write("\n | %s\n%s\n", strings.Join(header, "  "), rule)

	for p := 0; p < Digits; p++ {
		write("%d| ", p)
		for a := 0; a < Digits; a++ {
			write("%-3d", m.cells[p][a])
		}
		write("\n")
	}
	write("%s\n\n", rule)
	write("The recognition rate is %d%%.\n", m.Rate())

	return int64(n), bw.Flush()
}
