package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/bigint/funcs"
)

// Error message formats, gathered here the way bcd.go gathers its message
// constants, so every precondition violation in the package reads from one
// place.
const (
	errInvalidDigitRangeMsg = "Invalid digit range [%d, %d) for an Int of %d digits"
	errDivisorZeroMsg       = "Division by zero: divisor must be non-zero"
	errNegativeOperandMsg   = "Invalid operand %s: division requires a non-negative dividend and a positive divisor"
	errNegativeBaseMsg      = "Invalid base %s: exponentiation requires a non-negative base"
	errNegativeExponentMsg  = "Invalid exponent %s: exponentiation requires a non-negative exponent"
	errModulusMsg           = "Invalid modulus %s: modular operations require a positive modulus"
	errModulusSizeMsg       = "Invalid modulus size: pre-computed reciprocal was built for %d digits, got %d"
	errReductionRangeMsg    = "Invalid Barrett input: %s has %d digits, must be at most %d for a modulus of %d digits"
)

// Must panics if err is non-nil, otherwise does nothing. Mirrors
// funcs.Must, for callers that already know an operation cannot fail given
// their inputs.
func Must(err error) {
	funcs.Must(err)
}

// MustValue panics if err is non-nil, otherwise returns x.
func MustValue(x *Int, err error) *Int {
	return funcs.MustValue(x, err)
}
