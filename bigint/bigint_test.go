package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bantling/bigint/randsrc"
)

func TestNewZeroOne_(t *testing.T) {
	assert.Equal(t, 1, New(0).DigitNum())
	assert.Equal(t, 3, New(3).DigitNum())
	assert.True(t, Zero().IsZero())
	assert.True(t, One().IsOne())
	assert.Equal(t, Word(9), FromWord(9).Digit(0))
}

func TestRelease_(t *testing.T) {
	x := mkInt(Positive, 5)
	x.Release()
	assert.Nil(t, x.digits)
}

func TestRefine_(t *testing.T) {
	x := &Int{sign: Negative, digits: []Word{0, 0, 0}}
	x.Refine()
	assert.Equal(t, 1, x.DigitNum())
	assert.Equal(t, Positive, x.Sign())

	y := &Int{sign: Positive, digits: []Word{5, 0, 0}}
	y.Refine()
	assert.Equal(t, 1, y.DigitNum())
	assert.Equal(t, Word(5), y.Digit(0))
}

func TestCopyAndCopyPart_(t *testing.T) {
	x := mkInt(Positive, 1, 2, 3)
	c := x.Copy()
	assert.True(t, x.Equal(c))

	part := x.CopyPart(1, 3)
	assert.Equal(t, Positive, part.Sign())
	assert.Equal(t, Word(2), part.Digit(0))
	assert.Equal(t, Word(3), part.Digit(1))

	assert.Panics(t, func() { x.CopyPart(2, 1) })
	assert.Panics(t, func() { x.CopyPart(0, 10) })
}

func TestExpandCompress_(t *testing.T) {
	x := mkInt(Positive, 5)
	expanded := x.Expand(2)
	assert.Equal(t, 3, expanded.DigitNum())
	assert.Equal(t, Word(0), expanded.Digit(0))
	assert.Equal(t, Word(5), expanded.Digit(2))

	compressed := expanded.Compress(2)
	assert.True(t, x.Equal(compressed))

	assert.True(t, Zero().Equal(x.Compress(5)))
}

func TestExpandCompressOneBit_(t *testing.T) {
	x := mkInt(Positive, wordMax)
	expanded := x.ExpandOneBit()
	assert.True(t, mkInt(Positive, wordMax-1, 1).Equal(expanded))

	back := expanded.CompressOneBit()
	assert.True(t, x.Equal(back))
}

func TestBitLenAndBit_(t *testing.T) {
	x := mkInt(Positive, 0b1010)
	assert.Equal(t, WordBits, x.BitLen())
	assert.Equal(t, Word(0), x.Bit(0))
	assert.Equal(t, Word(1), x.Bit(1))
	assert.Equal(t, Word(0), x.Bit(2))
	assert.Equal(t, Word(1), x.Bit(3))
}

func TestSetZeroSetOne_(t *testing.T) {
	x := mkInt(Positive, 123)
	x.SetZero()
	assert.True(t, x.IsZero())

	x.SetOne()
	assert.True(t, x.IsOne())
}

func TestCmpAndEqual_(t *testing.T) {
	assert.Equal(t, 0, mkInt(Positive, 5).CmpAbs(mkInt(Negative, 5)))
	assert.Equal(t, 1, mkInt(Positive, 5).Cmp(mkInt(Negative, 5)))
	assert.Equal(t, -1, mkInt(Negative, 5).Cmp(mkInt(Positive, 5)))
	assert.Equal(t, 1, mkInt(Positive, 6).Cmp(mkInt(Positive, 5)))
	assert.Equal(t, -1, mkInt(Negative, 6).Cmp(mkInt(Negative, 5)))
	assert.True(t, mkInt(Positive, 5).Equal(mkInt(Positive, 5)))
}

func TestString_(t *testing.T) {
	assert.Equal(t, "0", Zero().String())
	assert.Equal(t, "a", mkInt(Positive, 0xa).String())
	assert.Equal(t, "-a", mkInt(Negative, 0xa).String())
	assert.Equal(t, "100000000", mkInt(Positive, 0, 1).String())
}

func TestGenerateRandom_(t *testing.T) {
	src := randsrc.NewDeterministicSource(1, 2)

	x, err := GenerateRandom(src, Positive, 4)
	require.NoError(t, err)
	assert.Equal(t, Positive, x.Sign())
	assert.LessOrEqual(t, x.DigitNum(), 4)

	// same seed, same stream
	src2 := randsrc.NewDeterministicSource(1, 2)
	y, err := GenerateRandom(src2, Positive, 4)
	require.NoError(t, err)
	assert.True(t, x.Equal(y))

	// the supplied sign is honored exactly, not randomized
	src3 := randsrc.NewDeterministicSource(3, 4)
	neg, err := GenerateRandom(src3, Negative, 2)
	require.NoError(t, err)
	assert.Equal(t, Negative, neg.Sign())
}
