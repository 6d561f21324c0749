package pixelscript

import (
	"github.com/deepteams/pixelscript/color"
	"github.com/deepteams/pixelscript/ir"
	"github.com/deepteams/pixelscript/parser"
)

// Space identifies one of the six color spaces a program can address.
type Space = ir.Space

const (
	SRGB = ir.SRGB
	HSV  = ir.HSV
	LRGB = ir.LRGB
	XYZ  = ir.XYZ
	LAB  = ir.LAB
	LCH  = ir.LCH
)

// Operation is a single compiled instruction. Callers that only call Parse
// followed by Process never need to inspect its fields.
type Operation = ir.Operation

// OpError is a non-fatal parse-time diagnostic: a row the parser could not
// fully make sense of. Parse keeps going and the resulting program simply
// omits the offending instruction (or, for an unresolved goto label, keeps
// a harmless no-op in its place).
type OpError = ir.OpError

// Parse compiles DSL source into a program that starts in the given color
// space. Diagnostics for rows the parser could not resolve are returned
// alongside the program rather than aborting compilation.
func Parse(code string, initial Space) ([]Operation, []OpError) {
	return parser.Parse(code, initial)
}

// Convert transforms a 3-channel pixel from one color space to another in
// place, routing through the minimal number of intermediate spaces along
// the fixed HSV-SRGB-LRGB-XYZ-LAB-LCH chain.
func Convert(from, to Space, pixel *[3]float32) {
	color.Convert(from, to, pixel)
}

// ConvertAlpha is Convert for a 4-channel pixel; the alpha channel (index
// 3) is left untouched.
func ConvertAlpha(from, to Space, pixel *[4]float32) {
	color.ConvertAlpha(from, to, pixel)
}
