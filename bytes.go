/*
 * Copyright 2009-2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style
 * license that can be found in the LICENSE file.
 */

package floatparse

// Byte-level grammar constants shared by the scanner, the formatter and
// the big-decimal fallback, named so a table lookup reads as a lookup,
// not a magic number.
const (
	zero  byte = '0'
	one   byte = '1'
	five  byte = '5'
	nine  byte = '9'
	plus  byte = '+'
	minus byte = '-'
	period byte = '.'

	eChr    byte = 'e'
	bigEChr byte = 'E'
	pChr    byte = 'p'
	bigPChr byte = 'P'
	nChr    byte = 'n'
	bigNChr byte = 'N'
	iChr    byte = 'i'
	bigIChr byte = 'I'
	xChr    byte = 'x'
	bigXChr byte = 'X'

	aChr    byte = 'a'
	fChr    byte = 'f'
	gChr    byte = 'g'
	bigAChr byte = 'A'
	bigFChr byte = 'F'
)

// decimalPointClass and otherClass are the two negative sentinels used by
// the hex-digit classification table (hexDigitClass), mirroring the
// CHAR_TO_HEX_MAP convention of the source this parser's grammar was
// distilled from: every byte maps to either a digit value 0..15, the
// decimal-point class, or "not part of a hex float".
const (
	decimalPointClass int8 = -4
	otherClass        int8 = -1
)

// hexDigitClass maps every possible byte value to its hex digit 0..15,
// to decimalPointClass for '.', or to otherClass for anything else.
// 256 entries despite hex digits living in the first 128: a full-width
// table lets the scanner index it with a raw byte, never having to guard
// against the high bit first.
var hexDigitClass = func() (tbl [256]int8) {
	for i := range tbl {
		tbl[i] = otherClass
	}
	for c := byte('0'); c <= '9'; c++ {
		tbl[c] = int8(c - '0')
	}
	for c := byte('A'); c <= 'F'; c++ {
		tbl[c] = int8(c-'A') + 10
	}
	for c := byte('a'); c <= 'f'; c++ {
		tbl[c] = int8(c-'a') + 10
	}
	tbl['.'] = decimalPointClass
	return
}()

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return zero <= c && c <= nine
}

// isWhitespace reports whether c is whitespace per the literal's grammar:
// any byte with value <= 0x20. Bytes above 0x20 are never whitespace,
// including bytes with the high bit set.
func isWhitespace(c byte) bool {
	return c <= 0x20
}
