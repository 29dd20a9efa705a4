// Package hexcodec converts between bigint.Int and hexadecimal string
// representations. Conversions are kept out of the bigint package itself,
// the way the teacher keeps big.Int conversions in a separate conv
// package rather than on big.Int's own type.
package hexcodec

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"strings"

	"github.com/bantling/bigint/bigint"
	"github.com/bantling/bigint/funcs"
	"github.com/bantling/bigint/union"
)

const (
	errEmptyStringMsg = "Cannot parse an empty string as a hex bigint"
	errInvalidHexMsg  = "Invalid hex digit %q at position %d in %q"
)

// sixteen is the constant multiplier SetFromHex shifts in by, one digit at
// a time.
var sixteen = bigint.FromWord(16)

// SetFromHex parses a hex string (an optional leading sign, an optional
// "0x"/"0X" prefix, then one or more hex digits) into oval, following the
// teacher's **T out-parameter convention (conv/bigint.go's
// IntToBigInt(ival T, oval **big.Int)) generalized to **bigint.Int.
//
// An invalid hex digit is reported as an error here, rather than silently
// treated as zero: the original's silent-zero behavior is called out as
// dubious and explicitly not worth extending.
func SetFromHex(ival string, oval **bigint.Int) error {
	s := ival
	negative := false

	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}

	if len(s) == 0 {
		return fmt.Errorf(errEmptyStringMsg)
	}

	result := bigint.Zero()
	for i, c := range s {
		digit, ok := hexDigitValue(byte(c))
		if !ok {
			return fmt.Errorf(errInvalidHexMsg, c, i, ival)
		}

		result = bigint.Add(bigint.KaratsubaMultiply(result, sixteen), bigint.FromWord(digit))
	}

	if negative {
		result = bigint.Sub(bigint.Zero(), result)
	}

	*oval = result
	return nil
}

// MustSetFromHex is a Must version of SetFromHex.
func MustSetFromHex(ival string, oval **bigint.Int) {
	funcs.Must(SetFromHex(ival, oval))
}

// OfHex parses a hex string into a fresh *bigint.Int, wrapping the result
// the way bcd.OfHex/MustHex wrap Number, via union.Result.
func OfHex(ival string) union.Result[*bigint.Int] {
	var x *bigint.Int
	err := SetFromHex(ival, &x)
	return union.OfResultError(x, err)
}

// MustHex is a Must version of OfHex.
func MustHex(ival string) *bigint.Int {
	var x *bigint.Int
	MustSetFromHex(ival, &x)
	return x
}

// FormatHex formats ival as a hex string: an optional leading '-', then
// lowercase hex digits with no leading zero digits (other than a sole
// "0"). It is the inverse of SetFromHex, and simply defers to bigint.Int's
// own Stringer, which already produces this format.
func FormatHex(ival *bigint.Int) string {
	return ival.String()
}

// hexDigitValue returns the numeric value of a single ASCII hex digit.
func hexDigitValue(c byte) (bigint.Word, bool) {
	switch {
	case c >= '0' && c <= '9':
		return bigint.Word(c - '0'), true
	case c >= 'a' && c <= 'f':
		return bigint.Word(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return bigint.Word(c-'A') + 10, true
	default:
		return 0, false
	}
}
