package floatparse

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// This file is the capability introspection module (CAP): a read-only
// reporter of host CPU features, grounded on minio-simdjson-go's
// SupportedCPU() (simdjson_amd64.go), which gates its assembly number
// parser on cpuid.CPU.Supports(...). This package's "vectorized" 8-byte
// digit run is portable SWAR arithmetic: it runs identically regardless
// of what CAP reports, so CAP never branches LS/MK. It exists purely so
// a caller instrumenting throughput can tell "the SWAR trick isn't
// winning much on this host" apart from "this input fell off the fast
// path".

// CPUCapabilities reports the CPU features relevant to judging whether
// 8-byte SWAR digit accumulation is a real win over scalar digit-by-digit
// accumulation on the current host.
type CPUCapabilities struct {
	// Name is the CPU brand string, as reported by cpuid.
	Name string
	// WideLoads reports whether the host's unaligned 8-byte load is
	// effectively free (true on every mainstream amd64/arm64 target;
	// false only signals that the SWAR trick's win over scalar
	// accumulation may be smaller than usual, never that it is unsafe).
	WideLoads bool
	// HasBMI2 reports support for BMI2 (PEXT/PDEP), which some
	// hand-vectorized digit parsers in this space use to widen the SWAR
	// trick further; unused by this package's portable implementation,
	// reported for diagnostic comparison against those implementations.
	HasBMI2 bool
}

var (
	capOnce sync.Once
	capInfo CPUCapabilities
)

// Capabilities returns the current host's CPUCapabilities, probing the
// CPU exactly once no matter how many callers ask (sync.Once, unlike PT
// and the hex/digit tables in bytes.go and powers.go, which are plain
// package-level data needing no guard at all).
func Capabilities() CPUCapabilities {
	capOnce.Do(func() {
		capInfo = CPUCapabilities{
			Name:      cpuid.CPU.BrandName,
			WideLoads: cpuid.CPU.Supports(cpuid.SSE2) || runtime.GOARCH == "arm64",
			HasBMI2:   cpuid.CPU.Supports(cpuid.BMI2),
		}
	})
	return capInfo
}
