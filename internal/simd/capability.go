package simd

import (
	"os"
	"strings"
)

// ISA selects a kernel family.
type ISA uint8

const (
	// Generic runs the scalar kernels.
	Generic ISA = iota
	// Vector runs the unrolled kernels. Available with AVX2 on x86-64 and
	// ASIMD on arm64.
	Vector
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case Vector:
		return "vector"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "vector":
		return Vector, true
	default:
		return Generic, false
	}
}

// EnvOverride names the environment variable that forces an ISA.
// Unknown or unavailable values fall back to auto-detection.
const EnvOverride = "VECMATH_SIMD"

// Set once by the platform init before any kernel runs.
var (
	activeISA   ISA
	hasOverride bool
	hasVector   bool
)

// initCapabilities is called from the platform init after hasVector is set.
func initCapabilities() {
	defer selectKernels()

	activeISA = Generic
	if hasVector {
		activeISA = Vector
	}

	if isa, ok := ParseISA(os.Getenv(EnvOverride)); ok && isISAAvailable(isa) {
		hasOverride = true
		activeISA = isa
	}
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case Vector:
		return hasVector
	default:
		return false
	}
}

// ActiveISA returns the ISA whose kernels are in use.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden reports whether VECMATH_SIMD selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasVector reports whether the CPU supports the Vector kernels.
func HasVector() bool {
	return hasVector
}
