/*
 * Copyright 2009-2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style
 * license that can be found in the LICENSE file.
 */

package floatparse

import "math"

// This file is the shortest round-trip formatter (SRT): the inverse of
// the scanner, used by callers that want decimal text back from a
// float64/float32 and by the round-trip property in scanner_test.go.
// It sits off the parser's critical path, so it only needs to be
// correct, not fast: it always goes through decimal.roundShortest, the
// same arbitrary-precision machinery REF uses, rather than also
// carrying a separate Grisu3-style fast estimator for the common case.

// FormatFloat returns the shortest decimal text that, read back through
// ParseFloat64 (bitSize 64) or ParseFloat32 (bitSize 32), reproduces f
// exactly.
func FormatFloat(f float64, bitSize int) []byte {
	return AppendFloat(nil, f, bitSize)
}

// AppendFloat is FormatFloat, appending to dst instead of allocating a
// fresh slice.
func AppendFloat(dst []byte, f float64, bitSize int) []byte {
	bits, flt := widthBits(f, bitSize)

	neg := bits>>(flt.expbits+flt.mantbits) != 0
	exp := int(bits>>flt.mantbits) & (1<<flt.expbits - 1)
	mant := bits & (uint64(1)<<flt.mantbits - 1)

	switch exp {
	case 1<<flt.expbits - 1:
		switch {
		case mant != 0:
			return append(dst, "NaN"...)
		case neg:
			return append(dst, "-Infinity"...)
		default:
			return append(dst, "+Infinity"...)
		}
	case 0:
		// denormalized
		exp++
	default:
		// add implicit top bit
		mant |= uint64(1) << flt.mantbits
	}
	exp += flt.bias

	d := new(decimal)
	d.assign(mant)
	d.shift(exp - int(flt.mantbits))
	d.roundShortest(mant, exp, flt)
	d.neg = neg

	return appendShortest(dst, d)
}

// widthBits extracts f's raw bits at the requested width, along with
// the floatInfo describing that width's layout.
func widthBits(f float64, bitSize int) (uint64, *floatInfo) {
	switch bitSize {
	case 32:
		return uint64(math.Float32bits(float32(f))), &float32info
	case 64:
		return math.Float64bits(f), &float64info
	default:
		panic("floatparse: AppendFloat/FormatFloat: invalid bitSize")
	}
}

// appendShortest writes d's digits in fixed-point notation unless the
// decimal point would otherwise sit more than 4 places before, or 6 or
// more places after, the first significant digit, in which case it
// switches to scientific notation instead.
func appendShortest(dst []byte, d *decimal) []byte {
	if d.neg {
		dst = append(dst, minus)
	}
	if d.nd == 0 {
		return append(dst, zero)
	}
	if exp := d.dp - 1; exp < -4 || exp >= 6 {
		return appendScientific(dst, d)
	}
	return appendFixed(dst, d)
}

// appendScientific writes d as d[0]"."d[1:]"e"±exp.
func appendScientific(dst []byte, d *decimal) []byte {
	dst = append(dst, d.d[0])
	if d.nd > 1 {
		dst = append(dst, period)
		dst = append(dst, d.d[1:d.nd]...)
	}
	dst = append(dst, eChr)

	exp := d.dp - 1
	sign := byte(plus)
	if exp < 0 {
		sign = minus
		exp = -exp
	}
	dst = append(dst, sign)

	switch {
	case exp < 10:
		dst = append(dst, zero, byte(exp)+zero)
	case exp < 100:
		dst = append(dst, byte(exp/10)+zero, byte(exp%10)+zero)
	default:
		dst = append(dst, byte(exp/100)+zero, byte(exp/10%10)+zero, byte(exp%10)+zero)
	}
	return dst
}

// appendFixed writes d without an exponent, padding with zeros on
// either side of the point as d.dp requires.
func appendFixed(dst []byte, d *decimal) []byte {
	switch {
	case d.dp <= 0:
		dst = append(dst, zero)
	default:
		m := d.nd
		if d.dp < m {
			m = d.dp
		}
		dst = append(dst, d.d[:m]...)
		for ; m < d.dp; m++ {
			dst = append(dst, zero)
		}
	}

	if frac := d.nd - d.dp; frac > 0 {
		dst = append(dst, period)
		for i := 0; i < frac; i++ {
			ch := byte(zero)
			if j := d.dp + i; 0 <= j && j < d.nd {
				ch = d.d[j]
			}
			dst = append(dst, ch)
		}
	}
	return dst
}
