/*
 * Copyright 2009-2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style
 * license that can be found in the LICENSE file.
 */

package floatparse

// MalformedNumber is the single error kind this package ever returns.
// It reports the offending input verbatim, unless the input is long
// enough that quoting it would be more noise than signal.
type MalformedNumber struct {
	// Input is the literal text that failed to parse, interpreted as
	// ISO-8859-1/ASCII. Empty when Len exceeds the quoting threshold.
	Input string
	// Len is the length in bytes of the original input. Always set.
	Len int
}

const malformedNumberQuoteLimit = 1024

func malformedNumber(src []byte) *MalformedNumber {
	if len(src) > malformedNumberQuoteLimit {
		return &MalformedNumber{Len: len(src)}
	}
	return &MalformedNumber{Input: string(src), Len: len(src)}
}

func (e *MalformedNumber) Error() string {
	if e.Input == "" && e.Len > malformedNumberQuoteLimit {
		return "floatparse: for input string of length " + itoa(e.Len)
	}
	return "floatparse: for input string: \"" + e.Input + "\""
}

// itoa avoids pulling in strconv just to render an int in an error path
// that strconv itself cannot be used from (this package stands in for it).
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
