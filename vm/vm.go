// Package vm implements the per-pixel evaluator: a register-like machine
// over a fixed 18-float scratch file plus a mutable 4-float pixel, with a
// color-space state machine and comparison/branch/goto control flow.
package vm

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/deepteams/pixelscript/color"
	"github.com/deepteams/pixelscript/ir"
)

// gotoBudget bounds the number of gotos (forward or backward) a single
// pixel's evaluation may take, guarding against infinite loops since loop detection is not
// static. It is a hard per-pixel limit, not a per-program one.
const gotoBudget = 100

// Rand supplies uniform [0,1) float32 samples for the DSL's Rand operand.
// The partitioner hands each worker its own Rand so no goroutine shares
// mutable generator state.
type Rand interface {
	Float32() float32
}

// pcgRand adapts math/rand/v2's PCG source to the Rand interface.
type pcgRand struct{ r *rand.Rand }

func (p pcgRand) Float32() float32 { return p.r.Float32() }

var randSeedOnce sync.Once
var randSeed1, randSeed2 uint64
var randCounter atomic.Uint64

// NewRand returns an independent random source suitable for one worker.
// Callers must not share the result across goroutines; call NewRand once
// per worker, as the partitioner does.
func NewRand() Rand {
	randSeedOnce.Do(func() {
		randSeed1 = uint64(rand.Int64())
		randSeed2 = uint64(rand.Int64())
	})
	n := randCounter.Add(1)
	return pcgRand{r: rand.New(rand.NewPCG(randSeed1+n, randSeed2^n))}
}

// ProcessSegment evaluates program against every pixel in pixels (a flat
// RGBA float32 buffer whose length must be a multiple of 4), in place.
// x, y is this segment's pixel origin within the full image and width,
// height are the full image's dimensions; they feed the position-derived
// contextual operands (Row, Col, XNorm, YNorm).
//
// Precondition: program[0] must be an ir.OpSpace node. If it is not (or
// program is empty), ProcessSegment returns without modifying pixels —
// this is a contract violation by the caller, not a runtime error.
func ProcessSegment(program []ir.Operation, pixels []float32, x, y, width, height int, externals *[9]float32, rng Rand) {
	if len(program) == 0 || program[0].Kind != ir.OpSpace {
		return
	}
	origSpace := program[0].Space

	var defaults [18]float32
	if externals != nil {
		copy(defaults[9:], externals[:])
	}

	if rng == nil {
		rng = NewRand()
	}

	numPixels := len(pixels) / 4
	for n := 0; n < numPixels; n++ {
		pixel := (*[4]float32)(pixels[n*4 : n*4+4])
		v := defaults
		space := origSpace
		budget := gotoBudget

		idx := 0
		var cur *ir.Operation
		if idx < len(program) {
			cur = &program[idx]
		}

		for cur != nil {
			switch cur.Kind {
			case ir.OpProcess:
				src := evalSource(cur.Source, pixel, &v, n, x, y, width, height, rng)
				tar := evalTargetPtr(cur.Target, pixel, &v)
				*tar = applyOp(cur.Op, *tar, src)
				idx++
				cur = programAt(program, idx)

			case ir.OpSpace:
				color.ConvertAlpha(space, cur.Space, pixel)
				space = cur.Space
				idx++
				cur = programAt(program, idx)

			case ir.OpIf:
				left := evalSource(cur.Left, pixel, &v, n, x, y, width, height, rng)
				right := evalSource(cur.Right, pixel, &v, n, x, y, width, height, rng)
				if applyCmp(cur.Cmp, left, right) {
					cur = cur.Then
				} else {
					idx++
					cur = programAt(program, idx)
				}

			case ir.OpGoto:
				if budget > 0 {
					idx = cur.GotoIndex
					budget--
					cur = programAt(program, idx)
				} else {
					cur = nil
				}

			case ir.OpSwap:
				t1 := evalTargetPtr(cur.T1, pixel, &v)
				t2 := evalTargetPtr(cur.T2, pixel, &v)
				*t1, *t2 = *t2, *t1
				idx++
				cur = programAt(program, idx)

			case ir.OpNop:
				idx++
				cur = programAt(program, idx)

			case ir.OpGotoTmp:
				panic("vm: unresolved GotoTmp reached the evaluator")

			default:
				panic("vm: unreachable operation kind")
			}
		}

		if space != origSpace {
			color.ConvertAlpha(space, origSpace, pixel)
		}
	}
}

func programAt(program []ir.Operation, idx int) *ir.Operation {
	if idx < 0 || idx >= len(program) {
		return nil
	}
	return &program[idx]
}
