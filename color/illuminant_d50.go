//go:build d50

package color

// buildIlluminant is the white point XYZ<->LAB is normalized against.
// Selected by the "d50" build tag; the default (no tag) is D65, see
// illuminant_d65.go.
var buildIlluminant = Illuminant{X: 0.964212, Y: 1.0, Z: 0.825188}
