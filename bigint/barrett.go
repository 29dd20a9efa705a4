package bigint

// SPDX-License-Identifier: Apache-2.0

import "fmt"

// BarrettPreCompute builds T = floor(B^(2n) / N) for a modulus n of n
// digits, for later reuse with BarrettReduce. Computing T once and reusing
// it across every reduction against the same modulus is the whole point of
// Barrett reduction: it turns repeated division into repeated
// multiplication plus a short correction loop.
//
// n must be positive. Grounded on the Barrett pre-computation step used
// ahead of modular exponentiation; computed here with BinaryLongDivide
// since it runs once per modulus rather than once per reduction.
func BarrettPreCompute(n *Int) (*Int, error) {
	if n.sign != Positive || n.IsZero() {
		return nil, fmt.Errorf(errModulusMsg, n)
	}

	digitNum := len(n.digits)
	bToThe2n := One().Expand(2 * digitNum)

	t, _, err := BinaryLongDivide(bToThe2n, n)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// BarrettReduce computes a mod n, given t as pre-computed by
// BarrettPreCompute for this same n. a must be non-negative and have at
// most 2*digitNum(n) digits, the range Barrett reduction is valid over.
//
// It estimates the quotient as q = floor(floor(a / B^(d-1)) * t / B^(d+1)),
// d being the digit count of n, subtracts q*n from a,
// and applies a short correction loop (at most a couple of iterations, per
// the standard Barrett error bound) to fix the estimate's low-order error.
func BarrettReduce(a, n, t *Int) (*Int, error) {
	if n.sign != Positive || n.IsZero() {
		return nil, fmt.Errorf(errModulusMsg, n)
	}
	if a.sign == Negative {
		return nil, fmt.Errorf(errNegativeOperandMsg, a)
	}

	digitNum := len(n.digits)
	if len(a.digits) > 2*digitNum {
		return nil, fmt.Errorf(errReductionRangeMsg, "dividend", len(a.digits), 2*digitNum, digitNum)
	}

	qEst := KaratsubaMultiply(a.Compress(digitNum-1), t).Compress(digitNum + 1)
	result := Sub(a, KaratsubaMultiply(qEst, n))

	for result.sign == Negative || result.CmpAbs(n) >= 0 {
		if result.sign == Negative {
			result = Add(result, n)
		} else {
			result = Sub(result, n)
		}
	}

	return result.Refine(), nil
}
