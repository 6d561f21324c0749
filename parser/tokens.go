package parser

import (
	"strconv"

	"github.com/deepteams/pixelscript/ir"
)

// mutableOperand resolves a token that must denote a writable location:
// c1..c4, v1..v9, e1..e9, or a single character matching a channel letter
// of the current space.
func mutableOperand(token string, space ir.Space) (ir.Obj, bool) {
	switch token {
	case "c1":
		return ir.Obj{Kind: ir.Chan, Index: 0}, true
	case "c2":
		return ir.Obj{Kind: ir.Chan, Index: 1}, true
	case "c3":
		return ir.Obj{Kind: ir.Chan, Index: 2}, true
	case "c4":
		return ir.Obj{Kind: ir.Chan, Index: 3}, true
	case "v1":
		return ir.Obj{Kind: ir.Var, Index: 0}, true
	case "v2":
		return ir.Obj{Kind: ir.Var, Index: 1}, true
	case "v3":
		return ir.Obj{Kind: ir.Var, Index: 2}, true
	case "v4":
		return ir.Obj{Kind: ir.Var, Index: 3}, true
	case "v5":
		return ir.Obj{Kind: ir.Var, Index: 4}, true
	case "v6":
		return ir.Obj{Kind: ir.Var, Index: 5}, true
	case "v7":
		return ir.Obj{Kind: ir.Var, Index: 6}, true
	case "v8":
		return ir.Obj{Kind: ir.Var, Index: 7}, true
	case "v9":
		return ir.Obj{Kind: ir.Var, Index: 8}, true
	case "e1":
		return ir.Obj{Kind: ir.Var, Index: 9}, true
	case "e2":
		return ir.Obj{Kind: ir.Var, Index: 10}, true
	case "e3":
		return ir.Obj{Kind: ir.Var, Index: 11}, true
	case "e4":
		return ir.Obj{Kind: ir.Var, Index: 12}, true
	case "e5":
		return ir.Obj{Kind: ir.Var, Index: 13}, true
	case "e6":
		return ir.Obj{Kind: ir.Var, Index: 14}, true
	case "e7":
		return ir.Obj{Kind: ir.Var, Index: 15}, true
	case "e8":
		return ir.Obj{Kind: ir.Var, Index: 16}, true
	case "e9":
		return ir.Obj{Kind: ir.Var, Index: 17}, true
	}
	if len([]rune(token)) != 1 {
		return ir.Obj{}, false
	}
	c := []rune(token)[0]
	channels := space.Channels()
	for i, ch := range channels {
		if rune(ch) == c {
			return ir.Obj{Kind: ir.Chan, Index: i}, true
		}
	}
	return ir.Obj{}, false
}

// sourceOperand resolves a token as an immutable-or-mutable source: the
// reserved contextual names first, then a float literal, then falling
// through to mutableOperand.
func sourceOperand(token string, space ir.Space) (ir.Obj, bool) {
	switch token {
	case "e":
		return ir.Obj{Kind: ir.E}, true
	case "pi":
		return ir.Obj{Kind: ir.Pi}, true
	case "rand":
		return ir.Obj{Kind: ir.Rand}, true
	case "row":
		return ir.Obj{Kind: ir.Row}, true
	case "col":
		return ir.Obj{Kind: ir.Col}, true
	case "width":
		return ir.Obj{Kind: ir.Width}, true
	case "height":
		return ir.Obj{Kind: ir.Height}, true
	case "xnorm":
		return ir.Obj{Kind: ir.XNorm}, true
	case "ynorm":
		return ir.Obj{Kind: ir.YNorm}, true
	}
	if f, err := strconv.ParseFloat(token, 32); err == nil {
		return ir.Obj{Kind: ir.Num, NumVal: float32(f)}, true
	}
	return mutableOperand(token, space)
}

// operatorToken resolves an operator keyword, symbolic or word form.
func operatorToken(token string) (ir.Op, bool) {
	switch token {
	case "+=", "+", "add":
		return ir.Add, true
	case "-=", "-", "sub":
		return ir.Sub, true
	case "*=", "*", "mul":
		return ir.Mul, true
	case "/=", "/", "div":
		return ir.Div, true
	case "%=", "%", "mod":
		return ir.Mod, true
	case "**", "^", "pow":
		return ir.Pow, true
	case "=", "set":
		return ir.Set, true
	case "abs":
		return ir.Abs, true
	case "acos":
		return ir.Acos, true
	case "acosh":
		return ir.Acosh, true
	case "asin":
		return ir.Asin, true
	case "asinh":
		return ir.Asinh, true
	case "atan":
		return ir.Atan, true
	case "atan2":
		return ir.Atan2, true
	case "atanh":
		return ir.Atanh, true
	case "cbrt":
		return ir.Cbrt, true
	case "ceil":
		return ir.Ceil, true
	case "copysign":
		return ir.Copysign, true
	case "cos":
		return ir.Cos, true
	case "cosh":
		return ir.Cosh, true
	case "degrees":
		return ir.Degrees, true
	case "diveuclid":
		return ir.Diveuclid, true
	case "exp":
		return ir.Exp, true
	case "exp2":
		return ir.Exp2, true
	case "expm1":
		return ir.Expm1, true
	case "floor":
		return ir.Floor, true
	case "fract":
		return ir.Fract, true
	case "hypot":
		return ir.Hypot, true
	case "ln":
		return ir.Ln, true
	case "ln1p":
		return ir.Ln1p, true
	case "log":
		return ir.Log, true
	case "log2":
		return ir.Log2, true
	case "log10":
		return ir.Log10, true
	case "max":
		return ir.Max, true
	case "min":
		return ir.Min, true
	case "radians":
		return ir.Radians, true
	case "recip":
		return ir.Recip, true
	case "remeuclid":
		return ir.Remeuclid, true
	case "round":
		return ir.Round, true
	case "signum":
		return ir.Signum, true
	case "sin":
		return ir.Sin, true
	case "sinh":
		return ir.Sinh, true
	case "sqrt":
		return ir.Sqrt, true
	case "tan":
		return ir.Tan, true
	case "tanh":
		return ir.Tanh, true
	case "trunc":
		return ir.Trunc, true
	case "invert":
		return ir.Invert, true
	default:
		return 0, false
	}
}

// comparisonToken resolves a comparison keyword, symbolic or word form.
func comparisonToken(token string) (ir.Cmp, bool) {
	switch token {
	case "==", "eq":
		return ir.Eq, true
	case "!=", "!", "neq":
		return ir.NEq, true
	case ">", "gt":
		return ir.Gt, true
	case "<", "lt":
		return ir.Lt, true
	case ">=", "gteq":
		return ir.GtEq, true
	case "<=", "lteq":
		return ir.LtEq, true
	default:
		return 0, false
	}
}

// spaceToken resolves a color-space keyword, with or without its "a"
// (alpha) suffix. Per the documented mapping for the rgb/rgba ambiguity,
// "rgb"/"rgba" denote linear RGB and "srgb"/"srgba" denote gamma-encoded
// sRGB.
func spaceToken(token string) (ir.Space, bool) {
	switch token {
	case "srgb", "srgba":
		return ir.SRGB, true
	case "hsv", "hsva":
		return ir.HSV, true
	case "rgb", "rgba", "lrgb", "lrgba":
		return ir.LRGB, true
	case "xyz", "xyza":
		return ir.XYZ, true
	case "lab", "laba":
		return ir.LAB, true
	case "lch", "lcha":
		return ir.LCH, true
	default:
		return 0, false
	}
}
