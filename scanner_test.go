/*
 * Copyright 2009-2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style
 * license that can be found in the LICENSE file.
 */

package floatparse

import (
	"math"
	"testing"
)

func TestParseFloat64Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"one", "1", 1.0},
		{"neg half", "-0.5", -0.5},
		{"padded", " +3.14159 ", 3.14159},
		{"e308", "1e308", 1e308},
		{"max hex", "0x1.fffffffffffffp+1023", math.MaxFloat64},
		{"max dec", "1.7976931348623157e308", math.MaxFloat64},
		{"smallest subnormal", "4.9e-324", math.SmallestNonzeroFloat64},
		{"dot5", ".5", 0.5},
		{"one dot", "1.", 1.0},
		{"bare int", "-42", -42},
		{"bare int plus", "+7", 7},
		{"smallest normal", "2.2250738585072014E-308", 2.2250738585072014e-308},
		{"smallest subnormal precise", "5E-324", 5e-324},
		{"nineteen nines", "9999999999999999999", 9999999999999999999.0},
		{"huge exp", "1e10000", math.Inf(1)},
		{"tiny exp", "1e-10000", 0},
		{"hex one", "0x1p0", 1.0},
		{"leading zero fraction", "0.00000001", 1e-8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFloat64([]byte(tc.input))
			if err != nil {
				t.Fatalf("ParseFloat64(%q) error: %v", tc.input, err)
			}
			if math.Signbit(got) != math.Signbit(tc.want) || (got != tc.want && !(math.IsNaN(got) && math.IsNaN(tc.want))) {
				t.Fatalf("ParseFloat64(%q) = %v (bits %x), want %v (bits %x)", tc.input, got, math.Float64bits(got), tc.want, math.Float64bits(tc.want))
			}
		})
	}
}

func TestParseFloat64NaNAndInf(t *testing.T) {
	got, err := ParseFloat64([]byte("NaN"))
	if err != nil || !math.IsNaN(got) {
		t.Fatalf("ParseFloat64(NaN) = %v, %v", got, err)
	}
	got, err = ParseFloat64([]byte("-Infinity"))
	if err != nil || got != math.Inf(-1) {
		t.Fatalf("ParseFloat64(-Infinity) = %v, %v", got, err)
	}
	got, err = ParseFloat64([]byte("Infinity"))
	if err != nil || got != math.Inf(1) {
		t.Fatalf("ParseFloat64(Infinity) = %v, %v", got, err)
	}
}

func TestParseFloat64SignOfZero(t *testing.T) {
	for _, s := range []string{"-0", "-0.0", "-0e10"} {
		got, err := ParseFloat64([]byte(s))
		if err != nil {
			t.Fatalf("ParseFloat64(%q) error: %v", s, err)
		}
		if got != 0 || !math.Signbit(got) {
			t.Fatalf("ParseFloat64(%q) = %v, want -0", s, got)
		}
	}
	for _, s := range []string{"0", "+0"} {
		got, err := ParseFloat64([]byte(s))
		if err != nil {
			t.Fatalf("ParseFloat64(%q) error: %v", s, err)
		}
		if got != 0 || math.Signbit(got) {
			t.Fatalf("ParseFloat64(%q) = %v, want +0", s, got)
		}
	}
}

func TestParseFloat64Malformed(t *testing.T) {
	tests := []string{
		"1..2",
		"",
		"+",
		"-",
		"0x1.0",
		".",
		"0x",
		"0x.p0",
		"1e",
		"1ex",
		"1 2",
		" ",
		"NaNN",
		"Infin",
		"--1",
		"1.2.3",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseFloat64([]byte(in))
			if err == nil {
				t.Fatalf("ParseFloat64(%q): expected error, got none", in)
			}
			if _, ok := err.(*MalformedNumber); !ok {
				t.Fatalf("ParseFloat64(%q): error type = %T, want *MalformedNumber", in, err)
			}
		})
	}
}

func TestParseFloat64WhitespaceInvariance(t *testing.T) {
	literals := []string{"1", "-0.5", "1e308", "NaN", "-Infinity", "0x1p0", "9999999999999999999"}
	for _, lit := range literals {
		plain, err := ParseFloat64([]byte(lit))
		if err != nil {
			t.Fatalf("ParseFloat64(%q) error: %v", lit, err)
		}
		padded, err := ParseFloat64([]byte("  " + lit + "  "))
		if err != nil {
			t.Fatalf("ParseFloat64(%q) error: %v", "  "+lit+"  ", err)
		}
		if math.Float64bits(plain) != math.Float64bits(padded) && !(math.IsNaN(plain) && math.IsNaN(padded)) {
			t.Fatalf("whitespace changed result for %q: %v vs %v", lit, plain, padded)
		}
	}
}

func TestParseFloat64At(t *testing.T) {
	buf := []byte("xxx3.14yyy")
	got, err := ParseFloat64At(buf, 3, 4)
	if err != nil {
		t.Fatalf("ParseFloat64At error: %v", err)
	}
	if got != 3.14 {
		t.Fatalf("ParseFloat64At = %v, want 3.14", got)
	}
}

func TestParseFloat64RoundTrip(t *testing.T) {
	values := []float64{
		1, -1, 0.1, 3.14159265358979, 1e100, 1e-100,
		math.MaxFloat64, math.SmallestNonzeroFloat64, 123456789.123456,
		2.2250738585072014e-308, 5e-324,
	}
	for _, v := range values {
		s := FormatFloat(v, 64)
		got, err := ParseFloat64(s)
		if err != nil {
			t.Fatalf("round trip ParseFloat64(%q) error: %v", s, err)
		}
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Fatalf("round trip mismatch: FormatFloat(%v) = %q, ParseFloat64 = %v", v, s, got)
		}
	}
}

func TestParseFloat32Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float32
	}{
		{"one", "1", 1},
		{"neg half", "-0.5", -0.5},
		{"pi", "3.14159", 3.14159},
		{"hex one", "0x1p0", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFloat32([]byte(tc.input))
			if err != nil {
				t.Fatalf("ParseFloat32(%q) error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParseFloat32(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseFloat32Malformed(t *testing.T) {
	_, err := ParseFloat32([]byte("1..2"))
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestCapabilities(t *testing.T) {
	caps := Capabilities()
	again := Capabilities()
	if caps != again {
		t.Fatalf("Capabilities() not stable across calls: %+v vs %+v", caps, again)
	}
}

func BenchmarkParseFloat64(b *testing.B) {
	in := []byte("3.14159265358979")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ParseFloat64(in)
	}
}
