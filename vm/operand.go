package vm

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/deepteams/pixelscript/ir"
)

// evalSource resolves any Obj to a float value. n is the pixel's
// enumeration index within this segment; x, y, width, height locate the
// segment within the full image so position-derived operands (Row, Col,
// XNorm, YNorm) are correct regardless of how the buffer was partitioned.
func evalSource(o ir.Obj, pixel *[4]float32, v *[18]float32, n, x, y, width, height int, rng Rand) float32 {
	switch o.Kind {
	case ir.Chan:
		return pixel[o.Index]
	case ir.Var:
		return v[o.Index]
	case ir.Num:
		return o.NumVal
	case ir.E:
		return math32.E
	case ir.Pi:
		return math32.Pi
	case ir.Rand:
		return rng.Float32()
	case ir.Row:
		return float32(pixelRow(n, x, y, width))
	case ir.Col:
		return float32(pixelCol(n, x, y, width))
	case ir.Width:
		return clampedDim(width)
	case ir.Height:
		return clampedDim(height)
	case ir.XNorm:
		return float32(pixelCol(n, x, y, width)) / clampedDim(width)
	case ir.YNorm:
		return float32(pixelRow(n, x, y, width)) / clampedDim(height)
	default:
		panic("vm: unreachable source operand kind")
	}
}

// evalTargetPtr resolves a mutable Obj (Chan or Var) to the float it
// denotes. Any other kind reaching here is a bug in the parser, which must
// never emit a mutable-operand position holding an immutable Obj.
func evalTargetPtr(o ir.Obj, pixel *[4]float32, v *[18]float32) *float32 {
	switch o.Kind {
	case ir.Chan:
		return &pixel[o.Index]
	case ir.Var:
		return &v[o.Index]
	default:
		panic("vm: target operand is not mutable — this is a parser bug")
	}
}

func pixelCol(n, x, y, width int) int {
	return (n + x + y*width) % width
}

func pixelRow(n, x, y, width int) int {
	return (n + x + y*width) / width
}

// clampedDim converts an image dimension to float32, capping it at
// math.MaxInt32. The math.MaxInt32 that pixelscript.Process substitutes
// for an unknown width is already at the cap and passes through unchanged.
func clampedDim(d int) float32 {
	if d > math.MaxInt32 {
		return float32(math.MaxInt32)
	}
	return float32(d)
}
