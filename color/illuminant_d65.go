//go:build !d50

package color

// buildIlluminant is the white point XYZ<->LAB is normalized against.
// D65 (noon daylight) is the default; build with -tags d50 to select D50
// instead (see illuminant_d50.go).
var buildIlluminant = Illuminant{X: 0.950489, Y: 1.0, Z: 1.088840}
