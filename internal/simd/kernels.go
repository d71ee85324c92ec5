package simd

// Kernel function pointers - set once at init by selectKernels.
// Generic implementations are the default.
var (
	kernelTransform2  = transform2Generic
	kernelTransform3  = transform3Generic
	kernelTransform4  = transform4Generic
	kernelMultiplyAdd = multiplyAddGeneric
	kernelScale       = scaleGeneric
)

// selectKernels wires the kernels for the active ISA.
func selectKernels() {
	switch activeISA {
	case Vector:
		kernelTransform4 = transform4Unrolled
	default:
		kernelTransform4 = transform4Generic
	}
}

// ============================================================================
// Public API
// ============================================================================

// Transform2 transforms the points in src (stride 2) by m into dst.
// Each point is treated as (x, y, 0, 1).
//
// SAFETY: Assumes len(dst) >= len(src) and len(src) is a multiple of 2.
// dst may alias src.
func Transform2(dst, src []float32, m *[4][4]float32) {
	kernelTransform2(dst, src, m)
}

// Transform3 transforms the points in src (stride 3) by m into dst.
// Each point is treated as (x, y, z, 1).
//
// SAFETY: Assumes len(dst) >= len(src) and len(src) is a multiple of 3.
// dst may alias src.
func Transform3(dst, src []float32, m *[4][4]float32) {
	kernelTransform3(dst, src, m)
}

// Transform4 transforms the homogeneous vectors in src (stride 4) by m
// into dst.
//
// SAFETY: Assumes len(dst) >= len(src) and len(src) is a multiple of 4.
// dst may alias src.
func Transform4(dst, src []float32, m *[4][4]float32) {
	kernelTransform4(dst, src, m)
}

// MultiplyAdd computes dst[i] = a[i]*mul[i] + add[i]. The product is rounded
// to float32 before the addition.
//
// SAFETY: Assumes dst, mul and add are at least len(a) long.
func MultiplyAdd(dst, a, mul, add []float32) {
	kernelMultiplyAdd(dst, a, mul, add)
}

// Scale computes dst[i] = a[i] * s.
//
// SAFETY: Assumes len(dst) >= len(a).
func Scale(dst, a []float32, s float32) {
	kernelScale(dst, a, s)
}

// ============================================================================
// Generic implementations
// ============================================================================

func transform2Generic(dst, src []float32, m *[4][4]float32) {
	for i := 0; i+1 < len(src); i += 2 {
		x, y := src[i], src[i+1]
		dst[i] = x*m[0][0] + y*m[1][0] + m[3][0]
		dst[i+1] = x*m[0][1] + y*m[1][1] + m[3][1]
	}
}

func transform3Generic(dst, src []float32, m *[4][4]float32) {
	for i := 0; i+2 < len(src); i += 3 {
		x, y, z := src[i], src[i+1], src[i+2]
		dst[i] = x*m[0][0] + y*m[1][0] + z*m[2][0] + m[3][0]
		dst[i+1] = x*m[0][1] + y*m[1][1] + z*m[2][1] + m[3][1]
		dst[i+2] = x*m[0][2] + y*m[1][2] + z*m[2][2] + m[3][2]
	}
}

func transform4Generic(dst, src []float32, m *[4][4]float32) {
	for i := 0; i+3 < len(src); i += 4 {
		transform4One(dst[i:i+4:i+4], src[i:i+4:i+4], m)
	}
}

func transform4One(dst, src []float32, m *[4][4]float32) {
	x, y, z, w := src[0], src[1], src[2], src[3]
	dst[0] = x*m[0][0] + y*m[1][0] + z*m[2][0] + w*m[3][0]
	dst[1] = x*m[0][1] + y*m[1][1] + z*m[2][1] + w*m[3][1]
	dst[2] = x*m[0][2] + y*m[1][2] + z*m[2][2] + w*m[3][2]
	dst[3] = x*m[0][3] + y*m[1][3] + z*m[2][3] + w*m[3][3]
}

// transform4Unrolled handles four vectors per iteration with the matrix
// hoisted into locals.
func transform4Unrolled(dst, src []float32, m *[4][4]float32) {
	m00, m01, m02, m03 := m[0][0], m[0][1], m[0][2], m[0][3]
	m10, m11, m12, m13 := m[1][0], m[1][1], m[1][2], m[1][3]
	m20, m21, m22, m23 := m[2][0], m[2][1], m[2][2], m[2][3]
	m30, m31, m32, m33 := m[3][0], m[3][1], m[3][2], m[3][3]

	n := len(src) - len(src)%16
	i := 0
	for ; i < n; i += 16 {
		s := src[i : i+16 : i+16]
		d := dst[i : i+16 : i+16]
		for j := 0; j < 16; j += 4 {
			x, y, z, w := s[j], s[j+1], s[j+2], s[j+3]
			d[j] = x*m00 + y*m10 + z*m20 + w*m30
			d[j+1] = x*m01 + y*m11 + z*m21 + w*m31
			d[j+2] = x*m02 + y*m12 + z*m22 + w*m32
			d[j+3] = x*m03 + y*m13 + z*m23 + w*m33
		}
	}
	transform4Generic(dst[i:], src[i:], m)
}

func multiplyAddGeneric(dst, a, mul, add []float32) {
	for i := range a {
		dst[i] = float32(a[i]*mul[i]) + add[i]
	}
}

func scaleGeneric(dst, a []float32, s float32) {
	for i := range a {
		dst[i] = a[i] * s
	}
}
