// Package vecmath provides fixed-size float32 vectors for graphics and
// game-engine numerics.
//
// Vector2, Vector3 and Vector4 are plain value types. Every operation takes
// its operands by value and returns a new vector, so vectors can be shared
// between goroutines freely.
//
// # Construction
//
//	v := vecmath.Vector3{X: 1, Y: 2, Z: 3}
//	z := vecmath.Zero3()
//	h := vecmath.Replicate4(0.5)
//
// Zero, One, Infinity, NaN, Epsilon and Replicate exist for every arity.
//
// # Component Access
//
// At maps 0 to X, 1 to Y, 2 to Z and 3 to W. Lower arities read the missing
// components as zero, so any vector can be indexed up to 3:
//
//	vecmath.Vector2{X: 5, Y: 7}.At(2) // 0
//
// # Swizzle and Permute
//
//	v.Swizzle(2, 1, 0, 0)        // Vector3(3, 2, 1)
//	a.Permute(b, 0, 5, 2, 7)     // a.X, b.Y, a.Z, b.W
//
// Permute indices 0 to 3 select from the receiver, 4 to 7 from the other
// operand. Swizzle and Permute ignore the trailing indices a lower arity
// does not need.
//
// # Transformation
//
// Matrix is row-major with the translation in row 3. Vector2 and Vector3 are
// transformed as points (implicit w = 1); Vector4 uses its own W:
//
//	m := vecmath.Translation(10, 0, 0)
//	p := vecmath.Vector3{X: 1}.Transform(&m)   // Vector3(11, 0, 0)
//
// # Floating Point Behavior
//
// Arithmetic follows IEEE-754: NaN and infinities propagate and division by
// zero is not an error. Min and Max ignore a single NaN operand and return
// the other one; Clamp inherits that rule.
//
// # Contract Violations
//
// Out of range indices and clamp bounds that are not strictly ordered are
// programmer errors. The offending call panics with *IndexError or
// *ClampBoundsError, both of which match ErrContractViolation:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, vecmath.ErrContractViolation) {
//	        // ...
//	    }
//	}()
//
// # Related Packages
//
//   - batch: context-aware, parallel transforms over vector slices
//   - codec: value codecs and compressed binary frames for vector slices
//   - prommetrics: Prometheus collector for batch metrics
package vecmath
