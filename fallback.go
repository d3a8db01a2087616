/*
 * Copyright 2009-2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style
 * license that can be found in the LICENSE file.
 */

package floatparse

import "math"

// This file wires the scanner (LS) to the arbitrary-precision reference
// path (REF, decimal.go), the fallback used whenever the math kernel
// (MK) declines. REF loads directly from the digitsStart:digitsEnd span
// and pointPos/rawExp that scanDecimal already computed: no grammar is
// re-walked here, so there is no grammar-rejection case left to map to
// *MalformedNumber the way a from-scratch decimal parse would need.

// decimalFallback converts the decimal literal res/src describes through
// the arbitrary-precision decimal type and rounds it to the IEEE width
// described by flt.
func decimalFallback(res scanResult, src []byte, flt *floatInfo) (float64, error) {
	var d decimal
	d.loadScanned(src[res.digitsStart:res.digitsEnd], res.pointPos, res.rawExp, res.neg)
	b, _ := d.floatBits(flt)
	return math.Float64frombits(b), nil
}

// decimalFallback32 is decimalFallback narrowed to binary32. It is used
// for every decimal ParseFloat32At call, not only MK-declined ones,
// because a float64 correctly rounded from decimal text is not always
// the float32 closest to that same text (double rounding). See
// scanner.go's ParseFloat32At for the full rationale.
func decimalFallback32(res scanResult, src []byte) (float32, error) {
	var d decimal
	d.loadScanned(src[res.digitsStart:res.digitsEnd], res.pointPos, res.rawExp, res.neg)
	b, _ := d.floatBits(&float32info)
	return math.Float32frombits(uint32(b)), nil
}
