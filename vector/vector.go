// Package vector reads and writes the hex test-vector file format used to
// drive bulk arithmetic/division runs: one hex literal per line, operand
// files for x and y, result files for the outcome(s). Grounded on
// original_source/autobahn_test.c's read_integer_from_file and
// write_integer_into_file.
package vector

// SPDX-License-Identifier: Apache-2.0

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bantling/bigint/bigint"
	"github.com/bantling/bigint/hexcodec"
)

// DivisionByZeroSentinel is written in place of a quotient/remainder line
// when a division's divisor is zero, matching the original's "DIV0!\n".
const DivisionByZeroSentinel = "DIV0!"

// Pair is one (x, y) line read from a pair of operand files.
type Pair struct {
	X, Y *bigint.Int
}

// ReadOperandPairs reads one hex literal per line from x and y in lockstep
// until either is exhausted, returning every (x, y) pair read. Grounded on
// bi_test's read_integer_from_file loop, generalized from a fixed 4225
// iteration count to "until EOF."
func ReadOperandPairs(x, y io.Reader) ([]Pair, error) {
	xScanner := bufio.NewScanner(x)
	yScanner := bufio.NewScanner(y)

	var pairs []Pair
	for {
		xOk := xScanner.Scan()
		yOk := yScanner.Scan()
		if !xOk || !yOk {
			break
		}

		xLine := strings.TrimSpace(xScanner.Text())
		yLine := strings.TrimSpace(yScanner.Text())
		if xLine == "" || yLine == "" {
			continue
		}

		xResult := hexcodec.OfHex(xLine)
		if xResult.HasError() {
			return nil, fmt.Errorf("operand x %q: %w", xLine, xResult.Error())
		}
		yResult := hexcodec.OfHex(yLine)
		if yResult.HasError() {
			return nil, fmt.Errorf("operand y %q: %w", yLine, yResult.Error())
		}

		xVal, yVal := xResult.Get(), yResult.Get()

		pairs = append(pairs, Pair{X: xVal, Y: yVal})
	}

	if err := xScanner.Err(); err != nil {
		return nil, err
	}
	if err := yScanner.Err(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// WriteResult writes result formatted as hex, one line, to w. Grounded on
// write_integer_into_file.
func WriteResult(w io.Writer, result *bigint.Int) error {
	_, err := fmt.Fprintln(w, hexcodec.FormatHex(result))
	return err
}

// WriteDivisionByZero writes the DIV0! sentinel line to w, matching the
// original's "DIV0!\n" fallback when bi_is_zero(operand_y) is true.
func WriteDivisionByZero(w io.Writer) error {
	_, err := fmt.Fprintln(w, DivisionByZeroSentinel)
	return err
}
