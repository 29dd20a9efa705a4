package bigint

// SPDX-License-Identifier: Apache-2.0

import "github.com/bantling/bigint/randsrc"

// Must-prefixed wrappers for every fallible operation, grounded on
// conv/bigint.go's MustFloatToBigInt pattern: the non-Must form returns
// (value, error), the Must form panics on error and returns only the
// value, for callers who already know their inputs satisfy the
// precondition (a fixed test harness, a fuzz corpus generator) and would
// rather panic loudly than thread an error they can't usefully handle.

// MustBinaryLongDivide is a Must version of BinaryLongDivide.
func MustBinaryLongDivide(x, y *Int) (*Int, *Int) {
	q, r, err := BinaryLongDivide(x, y)
	Must(err)
	return q, r
}

// MustWordLongDivide is a Must version of WordLongDivide.
func MustWordLongDivide(x, y *Int) (*Int, *Int) {
	q, r, err := WordLongDivide(x, y)
	Must(err)
	return q, r
}

// MustNaiveDivide is a Must version of NaiveDivide.
func MustNaiveDivide(x, y *Int) (*Int, *Int) {
	q, r, err := NaiveDivide(x, y)
	Must(err)
	return q, r
}

// MustBarrettPreCompute is a Must version of BarrettPreCompute.
func MustBarrettPreCompute(n *Int) *Int {
	return MustValue(BarrettPreCompute(n))
}

// MustBarrettReduce is a Must version of BarrettReduce.
func MustBarrettReduce(a, n, t *Int) *Int {
	return MustValue(BarrettReduce(a, n, t))
}

// MustExpL2R is a Must version of ExpL2R.
func MustExpL2R(base, exp *Int) *Int {
	return MustValue(ExpL2R(base, exp))
}

// MustExpMontgomery is a Must version of ExpMontgomery.
func MustExpMontgomery(base, exp *Int) *Int {
	return MustValue(ExpMontgomery(base, exp))
}

// MustExpModL2R is a Must version of ExpModL2R.
func MustExpModL2R(base, exp, n *Int) *Int {
	return MustValue(ExpModL2R(base, exp, n))
}

// MustExpModMontgomery is a Must version of ExpModMontgomery.
func MustExpModMontgomery(base, exp, n *Int) *Int {
	return MustValue(ExpModMontgomery(base, exp, n))
}

// MustGenerateRandom is a Must version of GenerateRandom.
func MustGenerateRandom(src randsrc.Source, sign Sign, n int) *Int {
	return MustValue(GenerateRandom(src, sign, n))
}
