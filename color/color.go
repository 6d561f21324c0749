// Package color implements pure per-pixel conversions between the color
// spaces the DSL can switch into, and the small set of auxiliary encoders
// (hex, 8-bit sRGB) a caller may need around them.
//
// All routing goes through the fixed chain
//
//	HSV <-> SRGB <-> LRGB <-> XYZ <-> LAB <-> LCH
//
// so that any (from, to) pair is realised by composing the shorter run of
// adjacent links; the chain never fails to route a pair because Space is a
// closed, validated enum.
package color

import "github.com/deepteams/pixelscript/ir"

// Space is re-exported so callers of this package don't need to import ir
// directly for the common case of picking a conversion target.
type Space = ir.Space

const (
	SRGB = ir.SRGB
	HSV  = ir.HSV
	LRGB = ir.LRGB
	XYZ  = ir.XYZ
	LAB  = ir.LAB
	LCH  = ir.LCH
)

// chain is the fixed conversion topology, ordered so that the index
// distance between two spaces is the number of link functions needed to
// get from one to the other.
var chain = [...]ir.Space{HSV, SRGB, LRGB, XYZ, LAB, LCH}

func chainIndex(s ir.Space) int {
	for i, c := range chain {
		if c == s {
			return i
		}
	}
	return -1
}

// upLinks[i] converts chain[i] -> chain[i+1]. downLinks[i] converts
// chain[i+1] -> chain[i].
var upLinks = [...]func(*[3]float32){
	hsvToSRGB,
	srgbToLRGB,
	lrgbToXYZ,
	xyzToLAB,
	labToLCH,
}

var downLinks = [...]func(*[3]float32){
	srgbToHSV,
	lrgbToSRGB,
	xyzToLRGB,
	labToXYZ,
	lchToLAB,
}

// Convert converts pixel in place from one color space to another, routing
// through the minimal run of intermediate spaces along the fixed chain.
func Convert(from, to ir.Space, pixel *[3]float32) {
	if from == to {
		return
	}
	fi, ti := chainIndex(from), chainIndex(to)
	if fi < 0 || ti < 0 {
		return
	}
	if fi < ti {
		for i := fi; i < ti; i++ {
			upLinks[i](pixel)
		}
	} else {
		for i := fi - 1; i >= ti; i-- {
			downLinks[i](pixel)
		}
	}
}

// ConvertAlpha is Convert over the first three channels of a 4-channel
// pixel; the fourth (alpha) channel is left untouched.
func ConvertAlpha(from, to ir.Space, pixel *[4]float32) {
	if from == to {
		return
	}
	rgb := [3]float32{pixel[0], pixel[1], pixel[2]}
	Convert(from, to, &rgb)
	pixel[0], pixel[1], pixel[2] = rgb[0], rgb[1], rgb[2]
}
