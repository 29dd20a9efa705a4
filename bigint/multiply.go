package bigint

// SPDX-License-Identifier: Apache-2.0

// mulSign derives a multiplication result's sign from its two operands'
// signs, never from an intermediate child product — Karatsuba's recursive
// calls on (x_hi - x_lo)*(y_lo - y_hi) compute their own sign correctly for
// that sub-product, but the final result's sign must come from the
// original x and y, not be XORed in from a child.
func mulSign(x, y Sign) Sign {
	if x == y {
		return Positive
	}
	return Negative
}

// wordMultiply is the schoolbook double-word product of two words, split
// into halves of width W/2. Grounded on the autobahn source's
// word_multiplication and math/one28.Mul, generalized from a fixed 32-bit
// word to the library's Word type.
func wordMultiply(x, y Word) (hi, lo Word) {
	const half = WordBits / 2
	const halfMask = wordMax >> half

	xHi, xLo := x>>half, x&halfMask
	yHi, yLo := y>>half, y&halfMask

	m0 := xHi * yLo
	m1 := xLo * yHi
	m2 := xLo * yLo
	m3 := xHi * yHi

	mid := m0 + m1
	midCarry := boolWord(mid < m0)

	lo = m2 + (mid << half)
	hi = m3 + (mid >> half) + (midCarry << half) + boolWord(lo < m2)

	return
}

// wordAsInt packages a (hi, lo) word pair from wordMultiply as a positive,
// refined two-digit Int.
func wordAsInt(hi, lo Word) *Int {
	return (&Int{sign: Positive, digits: []Word{lo, hi}}).Refine()
}

// SchoolbookMultiply computes x * y in O(n*m) word multiplications,
// accumulating each term into a result of capacity n+m via Add. Grounded on
// bigint_multiplication_textbook.
func SchoolbookMultiply(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}

	result := New(len(x.digits) + len(y.digits))

	for i, xd := range x.digits {
		for j, yd := range y.digits {
			hi, lo := wordMultiply(xd, yd)
			term := wordAsInt(hi, lo).Expand(i + j)
			result = Add(result, term)
		}
	}

	result.sign = mulSign(x.sign, y.sign)
	return result.Refine()
}

// KaratsubaMultiply computes x * y by divide-and-conquer: split both
// operands at k = ceil(max(n,m)/2) digits (always the max of the two digit
// counts, never the min — splitting on the min under-sizes the high half
// when the operands have unequal width and produces a wrong result), and
// combine three half-sized products. Falls back to SchoolbookMultiply when
// the smaller operand has at most karatsubaThreshold digits.
func KaratsubaMultiply(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}

	n, m := len(x.digits), len(y.digits)
	minNM, maxNM := n, m
	if minNM > maxNM {
		minNM, maxNM = maxNM, minNM
	}

	if minNM <= karatsubaThreshold {
		return SchoolbookMultiply(x, y)
	}

	k := (maxNM + 1) / 2

	xPad, yPad := x.padded(2*k), y.padded(2*k)
	xLo, xHi := xPad.CopyPart(0, k), xPad.CopyPart(k, 2*k)
	yLo, yHi := yPad.CopyPart(0, k), yPad.CopyPart(k, 2*k)

	high := KaratsubaMultiply(xHi, yHi)
	low := KaratsubaMultiply(xLo, yLo)

	xDiff := Sub(xHi, xLo)
	yDiff := Sub(yLo, yHi)
	mid := KaratsubaMultiply(xDiff, yDiff)
	mid = Add(Add(mid, high), low)

	magnitude := Add(Add(high.Expand(2*k), low), mid.Expand(k))
	// Sign comes only from the original operands, computed after the
	// magnitude — never inherited from a child product's sign.
	magnitude.sign = mulSign(x.sign, y.sign)

	return magnitude.Refine()
}

// Square computes x * x, using the diagonal-once/off-diagonal-doubled
// optimization: x^2 = sum_i d_i^2*B^2i + 2*sum_{i<j} d_i*d_j*B^(i+j).
func Square(x *Int) *Int {
	if x.IsZero() {
		return Zero()
	}

	n := len(x.digits)
	result := New(2 * n)

	for i := 0; i < n; i++ {
		hi, lo := wordMultiply(x.digits[i], x.digits[i])
		diag := wordAsInt(hi, lo).Expand(2 * i)
		result = Add(result, diag)

		for j := i + 1; j < n; j++ {
			hi, lo := wordMultiply(x.digits[i], x.digits[j])
			off := wordAsInt(hi, lo)
			off = Add(off, off)
			off = off.Expand(i + j)
			result = Add(result, off)
		}
	}

	result.sign = Positive
	return result.Refine()
}
