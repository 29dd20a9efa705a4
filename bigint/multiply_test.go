package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordMultiply_(t *testing.T) {
	hi, lo := wordMultiply(wordMax, wordMax)
	// (B-1)*(B-1) = B^2 - 2B + 1
	assert.Equal(t, Word(0xFFFFFFFE), hi)
	assert.Equal(t, Word(1), lo)

	hi, lo = wordMultiply(2, 3)
	assert.Equal(t, Word(0), hi)
	assert.Equal(t, Word(6), lo)
}

func TestSchoolbookMultiply_(t *testing.T) {
	// 6 * 7 = 42
	assert.True(t, mkInt(Positive, 42).Equal(SchoolbookMultiply(mkInt(Positive, 6), mkInt(Positive, 7))))

	// -6 * 7 = -42
	assert.True(t, mkInt(Negative, 42).Equal(SchoolbookMultiply(mkInt(Negative, 6), mkInt(Positive, 7))))

	// -6 * -7 = 42
	assert.True(t, mkInt(Positive, 42).Equal(SchoolbookMultiply(mkInt(Negative, 6), mkInt(Negative, 7))))

	// anything * 0 = 0
	assert.True(t, Zero().Equal(SchoolbookMultiply(mkInt(Positive, 12345), Zero())))

	// multi-word product
	x := mkInt(Positive, wordMax, wordMax)
	result := SchoolbookMultiply(x, x)
	expected := Square(x)
	assert.True(t, expected.Equal(result))
}

func TestKaratsubaMultiply_(t *testing.T) {
	// operands above karatsubaThreshold take the Karatsuba path and must agree with schoolbook
	x := mkInt(Positive, wordMax, wordMax, wordMax)
	y := mkInt(Positive, 1, 2, 3)

	assert.True(t, SchoolbookMultiply(x, y).Equal(KaratsubaMultiply(x, y)))
	assert.True(t, SchoolbookMultiply(x, y).Equal(KaratsubaMultiply(y, x)))

	// unequal operand widths: split must use max(n, m), not min(n, m)
	wide := mkInt(Positive, 1, 2, 3, 4, 5)
	narrow := mkInt(Positive, 7, 8, 9)
	assert.True(t, SchoolbookMultiply(wide, narrow).Equal(KaratsubaMultiply(wide, narrow)))
	assert.True(t, SchoolbookMultiply(narrow, wide).Equal(KaratsubaMultiply(narrow, wide)))

	// sign is derived from the original operands, not an intermediate product
	negResult := KaratsubaMultiply(mkInt(Negative, 1, 2, 3, 4, 5), narrow)
	assert.Equal(t, Negative, negResult.Sign())

	assert.True(t, Zero().Equal(KaratsubaMultiply(wide, Zero())))
}

func TestSquare_(t *testing.T) {
	// 13^2 = 169
	assert.True(t, mkInt(Positive, 169).Equal(Square(mkInt(Positive, 13))))

	// (-13)^2 = 169 (always positive)
	assert.True(t, mkInt(Positive, 169).Equal(Square(mkInt(Negative, 13))))

	assert.True(t, Zero().Equal(Square(Zero())))

	// Square must agree with schoolbook self-multiplication
	x := mkInt(Positive, wordMax, 1, 2)
	assert.True(t, SchoolbookMultiply(x, x).Equal(Square(x)))
}
