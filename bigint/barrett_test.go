package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarrettPreComputeAndReduce_(t *testing.T) {
	n := mkInt(Positive, 97)

	tVal, err := BarrettPreCompute(n)
	require.NoError(t, err)

	for _, a := range []*Int{
		mkInt(Positive, 0),
		mkInt(Positive, 50),
		mkInt(Positive, 97),
		mkInt(Positive, 12345),
		Square(mkInt(Positive, 96)),
	} {
		result, err := BarrettReduce(a, n, tVal)
		require.NoError(t, err)

		_, expected, err := BinaryLongDivide(a, n)
		require.NoError(t, err)

		assert.True(t, expected.Equal(result), "Barrett(%v) mod %v", a, n)
	}

	_, err = BarrettPreCompute(Zero())
	require.Error(t, err)

	_, err = BarrettReduce(mkInt(Negative, 5), n, tVal)
	require.Error(t, err)
}

func TestBarrettReduce_outOfRange(t *testing.T) {
	n := mkInt(Positive, 97)
	tVal, err := BarrettPreCompute(n)
	require.NoError(t, err)

	tooBig := mkInt(Positive, 1, 2, 3, 4, 5)
	_, err = BarrettReduce(tooBig, n, tVal)
	require.Error(t, err)
}
