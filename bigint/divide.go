package bigint

// SPDX-License-Identifier: Apache-2.0

import "fmt"

// specialCase filters the invalid and trivially-solved divisions, reporting
// whether it already produced (q, r) and so the caller should return
// immediately. Grounded on bigint_division_special_case / bi_div_discriminant.
func specialCase(x, y *Int) (q, r *Int, handled bool, err error) {
	if y.IsZero() {
		return Zero(), Zero(), true, fmt.Errorf(errDivisorZeroMsg)
	}
	if x.sign == Negative || y.sign == Negative {
		return Zero(), Zero(), true, fmt.Errorf(errNegativeOperandMsg, "(x or y)")
	}

	if x.CmpAbs(y) < 0 {
		return Zero(), x.Copy(), true, nil
	}
	if y.IsOne() {
		return x.Copy(), Zero(), true, nil
	}

	return nil, nil, false, nil
}

// BinaryLongDivide computes x / y by testing one bit of x at a time,
// most-significant first: R <- 2R + bit; if R >= y, Q <- Q + 2^j and
// R <- R - y. It requires a non-negative x and a positive y; it is the
// textbook reference division, used to cross-check WordLongDivide and to
// compute the Barrett pre-computed reciprocal.
func BinaryLongDivide(x, y *Int) (q, r *Int, err error) {
	if q, r, handled, err := specialCase(x, y); handled {
		return q, r, err
	}

	quotient := Zero()
	remainder := Zero()

	for j := x.BitLen() - 1; j >= 0; j-- {
		remainder = remainder.ExpandOneBit()
		if x.Bit(j) == 1 {
			remainder = Add(remainder, One())
		}

		if remainder.CmpAbs(y) >= 0 {
			remainder = Sub(remainder, y)
			quotient = setBit(quotient, j)
		}
	}

	return quotient.Refine(), remainder.Refine(), nil
}

// setBit returns x with bit j set, growing x's digit storage as needed.
func setBit(x *Int, j int) *Int {
	need := j/WordBits + 1
	if len(x.digits) < need {
		digits := make([]Word, need)
		copy(digits, x.digits)
		x = &Int{sign: x.sign, digits: digits}
	} else {
		x = x.Copy()
	}

	x.digits[j/WordBits] |= Word(1) << (j % WordBits)
	return x
}

// twoWordDivide divides the 2W-bit dividend (aHi*B + aLo) by a normalized
// divisor b in [B/2, B), given aHi < b, returning the single-word quotient.
// Grounded on word2_long_div: iterate the w bits of aLo from the top,
// tracking a running remainder that is shown (by the normalization
// precondition) to always fit in one word.
func twoWordDivide(aHi, aLo, b Word) Word {
	var q Word
	r := DWord(aHi)

	for j := WordBits - 1; j >= 0; j-- {
		bit := DWord((aLo >> j) & 1)

		if r >= DWord(wordHighBit) {
			q |= Word(1) << j
			r = 2*r + bit - DWord(b)
		} else {
			r = 2*r + bit
			if r >= DWord(b) {
				q |= Word(1) << j
				r -= DWord(b)
			}
		}
	}

	return q
}

// divcc is the normalized core division step. It requires y to be
// normalized (top word >= B/2) and x.digit_num in {m, m+1} where
// m = y.digit_num, with x < y*B. Grounded on divcc in autobahn_div.c.
func divcc(x, y *Int) (q Word, r *Int) {
	n, m := len(x.digits), len(y.digits)

	switch n {
	case m:
		q = x.digits[m-1] / y.digits[m-1]
	case m + 1:
		if x.digits[m] == y.digits[m-1] {
			q = wordMax
		} else {
			q = twoWordDivide(x.digits[m], x.digits[m-1], y.digits[m-1])
		}
	default:
		panic(fmt.Errorf("divcc: invalid digit counts n=%d m=%d, require n in {m, m+1}", n, m))
	}

	remainder := Sub(x, SchoolbookMultiply(FromWord(q), y))

	for remainder.sign == Negative {
		q--
		remainder = Add(remainder, y)
	}

	return q, remainder.Refine()
}

// divc produces one word of quotient by normalizing y so its top word lies
// in [B/2, B), scaling x by the same power of two, running divcc, then
// undoing the scale on the remainder. Grounded on divc in autobahn_div.c.
func divc(x, y *Int) (q Word, r *Int) {
	if x.CmpAbs(y) < 0 {
		return 0, x.Copy()
	}

	k := 0
	top := y.digits[len(y.digits)-1]
	for top&wordHighBit == 0 {
		top <<= 1
		k++
	}

	xPrime, yPrime := x, y
	for i := 0; i < k; i++ {
		xPrime = xPrime.ExpandOneBit()
		yPrime = yPrime.ExpandOneBit()
	}

	quotient, remainderPrime := divcc(xPrime, yPrime)

	remainder := remainderPrime
	for i := 0; i < k; i++ {
		remainder = remainder.CompressOneBit()
	}

	return quotient, remainder.Refine()
}

// WordLongDivide is the top-level multi-word long division: it consumes x
// one word at a time from the most significant end, calling divc once per
// word of quotient produced. Grounded on bigint_division_general_long /
// bi_div_long's DIVlong procedure.
func WordLongDivide(x, y *Int) (q, r *Int, err error) {
	if q, r, handled, err := specialCase(x, y); handled {
		return q, r, err
	}

	remainder := Zero()
	quotient := Zero()

	for i := len(x.digits) - 1; i >= 0; i-- {
		dividend := Add(remainder.Expand(1), wordAsInt(0, x.digits[i]))

		qi, rem := divc(dividend, y)
		remainder = rem

		quotient = Add(quotient.Expand(1), FromWord(qi))
	}

	return quotient.Refine(), remainder.Refine(), nil
}

// NaiveDivide computes x / y by repeated subtraction. It is provided only
// as a reference implementation — it is never called from exponentiation
// or reduction paths, and is unusably slow for cryptographic-sized
// operands. Grounded on bi_div_naive / bigint_division_naive.
func NaiveDivide(x, y *Int) (q, r *Int, err error) {
	if q, r, handled, err := specialCase(x, y); handled {
		return q, r, err
	}

	quotient := Zero()
	remainder := x.Copy()
	one := One()

	for remainder.CmpAbs(y) >= 0 {
		quotient = Add(quotient, one)
		remainder = Sub(remainder, y)
	}

	return quotient.Refine(), remainder.Refine(), nil
}
