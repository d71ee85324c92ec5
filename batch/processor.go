package batch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/layout"
	"github.com/hupe1980/vecmath/internal/simd"
)

// LengthError is returned when an output or operand slice is shorter than src.
type LengthError struct {
	Op   string
	Arg  string
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: %s has %d vectors, need %d", e.Op, e.Arg, e.Got, e.Want)
}

func checkLen(op, arg string, want, got int) error {
	if got < want {
		return &LengthError{Op: op, Arg: arg, Want: want, Got: got}
	}
	return nil
}

// Processor runs batch operations. A Processor is safe for concurrent use.
type Processor struct {
	opts options
}

// New creates a Processor.
func New(optFns ...Option) *Processor {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Processor{opts: opts}
}

// Transform2 writes src[i].Transform(m) to dst[i].
func (p *Processor) Transform2(ctx context.Context, dst, src []vecmath.Vector2, m *vecmath.Matrix) error {
	const op = "transform2"
	if err := checkLen(op, "dst", len(src), len(dst)); err != nil {
		return err
	}

	d, s, mm := layout.Floats(dst), layout.Floats(src), (*[4][4]float32)(m)
	return p.run(ctx, op, 2, len(src), func(lo, hi int) {
		simd.Transform2(d[2*lo:2*hi], s[2*lo:2*hi], mm)
	})
}

// Transform3 writes src[i].Transform(m) to dst[i].
func (p *Processor) Transform3(ctx context.Context, dst, src []vecmath.Vector3, m *vecmath.Matrix) error {
	const op = "transform3"
	if err := checkLen(op, "dst", len(src), len(dst)); err != nil {
		return err
	}

	d, s, mm := layout.Floats(dst), layout.Floats(src), (*[4][4]float32)(m)
	return p.run(ctx, op, 3, len(src), func(lo, hi int) {
		simd.Transform3(d[3*lo:3*hi], s[3*lo:3*hi], mm)
	})
}

// Transform4 writes src[i].Transform(m) to dst[i].
func (p *Processor) Transform4(ctx context.Context, dst, src []vecmath.Vector4, m *vecmath.Matrix) error {
	const op = "transform4"
	if err := checkLen(op, "dst", len(src), len(dst)); err != nil {
		return err
	}

	d, s, mm := layout.Floats(dst), layout.Floats(src), (*[4][4]float32)(m)
	return p.run(ctx, op, 4, len(src), func(lo, hi int) {
		simd.Transform4(d[4*lo:4*hi], s[4*lo:4*hi], mm)
	})
}

// MultiplyAdd writes src[i].MultiplyAdd(mul[i], add[i]) to dst[i].
// The result is bit-identical to the per-vector operation.
func MultiplyAdd[V vecmath.Fixed](ctx context.Context, p *Processor, dst, src, mul, add []V) error {
	const op = "multiply_add"
	n := len(src)
	for _, c := range []struct {
		arg string
		got int
	}{{"dst", len(dst)}, {"mul", len(mul)}, {"add", len(add)}} {
		if err := checkLen(op, c.arg, n, c.got); err != nil {
			return err
		}
	}

	k := layout.Arity[V]()
	d, s := layout.Floats(dst), layout.Floats(src)
	ml, ad := layout.Floats(mul), layout.Floats(add)
	return p.run(ctx, op, k, n, func(lo, hi int) {
		simd.MultiplyAdd(d[k*lo:k*hi], s[k*lo:k*hi], ml[k*lo:k*hi], ad[k*lo:k*hi])
	})
}

// Scale writes src[i].Scale(s) to dst[i].
func Scale[V vecmath.Fixed](ctx context.Context, p *Processor, dst, src []V, s float32) error {
	const op = "scale"
	if err := checkLen(op, "dst", len(src), len(dst)); err != nil {
		return err
	}

	k := layout.Arity[V]()
	d, sf := layout.Floats(dst), layout.Floats(src)
	return p.run(ctx, op, k, len(src), func(lo, hi int) {
		simd.Scale(d[k*lo:k*hi], sf[k*lo:k*hi], s)
	})
}

// run calls fn over [0, n) in chunks. Chunks are disjoint, so fn may write
// its range without synchronization.
func (p *Processor) run(ctx context.Context, op string, arity, n int, fn func(lo, hi int)) (err error) {
	start := time.Now()
	chunks := 0

	defer func() {
		elapsed := time.Since(start)
		p.opts.metrics.RecordBatch(op, n, elapsed, err)
		p.opts.logger.WithOp(op).WithArity(arity).WithCount(n).LogBatch(ctx, chunks, elapsed, err)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	size := p.opts.chunkSize
	if n <= size {
		if n > 0 {
			chunks = 1
			fn(0, n)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.workers)

	for lo := 0; lo < n; lo += size {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+size, n)
		chunks++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// The loop may have stopped early without any goroutine observing it.
	return ctx.Err()
}
