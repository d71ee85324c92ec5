// Package batch applies vecmath operations to slices of vectors.
//
// A Processor splits large slices into chunks and runs them on a bounded
// number of goroutines; small slices run inline on the caller's goroutine.
// Every element of the result is the same value the per-vector operation
// would produce, apart from rounding when the platform fuses multiply and
// add instructions in Transform.
//
//	p := batch.New(batch.WithWorkers(4))
//	m := vecmath.Translation(0, 10, 0)
//	if err := p.Transform3(ctx, points, points, &m); err != nil {
//	    return err
//	}
//
// dst may be the same slice as src for in-place updates. Partially
// overlapping dst and src slices are not supported.
package batch
