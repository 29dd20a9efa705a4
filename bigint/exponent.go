package bigint

// SPDX-License-Identifier: Apache-2.0

import "fmt"

// ExpL2R computes base^exp by the left-to-right square-and-multiply method:
// scan the exponent's bits from the most significant, squaring the running
// result every step and additionally multiplying by base whenever the
// current bit is 1. base must be non-negative and exp must be non-negative.
func ExpL2R(base, exp *Int) (*Int, error) {
	if base.sign == Negative {
		return nil, fmt.Errorf(errNegativeBaseMsg, base)
	}
	if exp.sign == Negative {
		return nil, fmt.Errorf(errNegativeExponentMsg, exp)
	}

	if exp.IsZero() {
		return One(), nil
	}

	result := One()
	for j := exp.BitLen() - 1; j >= 0; j-- {
		result = Square(result)
		if exp.Bit(j) == 1 {
			result = KaratsubaMultiply(result, base)
		}
	}

	return result.Refine(), nil
}

// ExpMontgomery computes base^exp with the Montgomery ladder: every step
// performs one multiplication and one squaring regardless of the exponent's
// bit value; the bit only selects which of the pair of running values
// (r0, r1) receives which result. Compared with ExpL2R this costs one extra
// multiplication for every 0 bit of the exponent, in exchange for an
// operation sequence that does not depend on the exponent's bits.
func ExpMontgomery(base, exp *Int) (*Int, error) {
	if base.sign == Negative {
		return nil, fmt.Errorf(errNegativeBaseMsg, base)
	}
	if exp.sign == Negative {
		return nil, fmt.Errorf(errNegativeExponentMsg, exp)
	}

	if exp.IsZero() {
		return One(), nil
	}

	r0, r1 := One(), base.Copy()

	for j := exp.BitLen() - 1; j >= 0; j-- {
		if exp.Bit(j) == 0 {
			r1 = KaratsubaMultiply(r0, r1)
			r0 = Square(r0)
		} else {
			r0 = KaratsubaMultiply(r0, r1)
			r1 = Square(r1)
		}
	}

	return r0.Refine(), nil
}

// ExpModL2R computes base^exp mod n, Barrett-reducing the running result
// after every square and every conditional multiply. n must be positive;
// base and exp must be non-negative.
func ExpModL2R(base, exp, n *Int) (*Int, error) {
	if n.sign != Positive || n.IsZero() {
		return nil, fmt.Errorf(errModulusMsg, n)
	}
	if base.sign == Negative {
		return nil, fmt.Errorf(errNegativeBaseMsg, base)
	}
	if exp.sign == Negative {
		return nil, fmt.Errorf(errNegativeExponentMsg, exp)
	}

	r, err := BarrettPreCompute(n)
	if err != nil {
		return nil, err
	}

	reduce := func(x *Int) (*Int, error) {
		if x.CmpAbs(n) < 0 {
			return x, nil
		}
		return BarrettReduce(x, n, r)
	}

	base, err = reduce(base)
	if err != nil {
		return nil, err
	}

	if exp.IsZero() {
		if n.IsOne() {
			return Zero(), nil
		}
		return One(), nil
	}

	result := One()
	for j := exp.BitLen() - 1; j >= 0; j-- {
		result = Square(result)
		if result, err = reduce(result); err != nil {
			return nil, err
		}

		if exp.Bit(j) == 1 {
			result = KaratsubaMultiply(result, base)
			if result, err = reduce(result); err != nil {
				return nil, err
			}
		}
	}

	return result.Refine(), nil
}

// ExpModMontgomery computes base^exp mod n using the same fixed-schedule
// ladder as ExpMontgomery, Barrett-reducing both running values after every
// step so they stay within the range BarrettReduce accepts.
func ExpModMontgomery(base, exp, n *Int) (*Int, error) {
	if n.sign != Positive || n.IsZero() {
		return nil, fmt.Errorf(errModulusMsg, n)
	}
	if base.sign == Negative {
		return nil, fmt.Errorf(errNegativeBaseMsg, base)
	}
	if exp.sign == Negative {
		return nil, fmt.Errorf(errNegativeExponentMsg, exp)
	}

	r, err := BarrettPreCompute(n)
	if err != nil {
		return nil, err
	}

	reduce := func(x *Int) (*Int, error) {
		if x.CmpAbs(n) < 0 {
			return x, nil
		}
		return BarrettReduce(x, n, r)
	}

	base, err = reduce(base)
	if err != nil {
		return nil, err
	}

	if exp.IsZero() {
		if n.IsOne() {
			return Zero(), nil
		}
		return One(), nil
	}

	r0, r1 := One(), base

	for j := exp.BitLen() - 1; j >= 0; j-- {
		if exp.Bit(j) == 0 {
			r1 = KaratsubaMultiply(r0, r1)
			r0 = Square(r0)
		} else {
			r0 = KaratsubaMultiply(r0, r1)
			r1 = Square(r1)
		}

		if r0, err = reduce(r0); err != nil {
			return nil, err
		}
		if r1, err = reduce(r1); err != nil {
			return nil, err
		}
	}

	return r0.Refine(), nil
}
