package funcs

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMust_(t *testing.T) {
	var e error
	Must(e)

	e = fmt.Errorf("bob")
	TryTo(
		func() {
			Must(e)
			assert.Fail(t, "Must die")
		},
		func(err any) { assert.Equal(t, e, err) },
	)
}

func TestMustValue_(t *testing.T) {
	var (
		e error
		i int
	)
	assert.Equal(t, i, MustValue(i, e))

	e = fmt.Errorf("bob")
	TryTo(
		func() {
			MustValue(i, e)
			assert.Fail(t, "Must die")
		},
		func(err any) { assert.Equal(t, e, err) },
	)
}

func TestTryTo_(t *testing.T) {
	var (
		tryCalled     bool
		panicValue    any
		closersCalled = []int{0}
		theError      = fmt.Errorf("The error")
	)

	TryTo(
		func() { tryCalled = true },
		func(err any) { panicValue = err },
		func() { closersCalled[0] = 1 },
	)
	assert.True(t, tryCalled)
	assert.Nil(t, panicValue)
	assert.Equal(t, 1, closersCalled[0])

	tryCalled, panicValue, closersCalled = false, nil, []int{0}
	TryTo(
		func() { tryCalled = true; panic(theError) },
		func(err any) { panicValue = err },
	)
	assert.True(t, tryCalled)
	assert.Equal(t, theError, panicValue)
	assert.Equal(t, 0, closersCalled[0])

	tryCalled, panicValue, closersCalled = false, nil, []int{}
	TryTo(
		func() { tryCalled = true },
		func(err any) { panicValue = err },
		func() { closersCalled = append(closersCalled, 1) },
		func() { closersCalled = append(closersCalled, 2) },
	)
	assert.True(t, tryCalled)
	assert.Nil(t, panicValue)
	assert.Equal(t, []int{2, 1}, closersCalled)
}
