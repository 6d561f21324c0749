package color

import "github.com/chewxy/math32"

// XYZ <-> CIE LAB, normalized against buildIlluminant (D65 by default, D50
// with the "d50" build tag). delta = 6/29 per the CIE definition.

func xyzToLAB(pixel *[3]float32) {
	wp := buildIlluminant
	fx := labF(pixel[0] / wp.X)
	fy := labF(pixel[1] / wp.Y)
	fz := labF(pixel[2] / wp.Z)

	pixel[0] = 116*fy - 16
	pixel[1] = 500 * (fx - fy)
	pixel[2] = 200 * (fy - fz)
}

func labToXYZ(pixel *[3]float32) {
	wp := buildIlluminant
	fy := (pixel[0] + 16) / 116
	fx := fy + pixel[1]/500
	fz := fy - pixel[2]/200

	pixel[0] = wp.X * labFInv(fx)
	pixel[1] = wp.Y * labFInv(fy)
	pixel[2] = wp.Z * labFInv(fz)
}

func labF(t float32) float32 {
	if t > labDelta*labDelta*labDelta {
		return math32.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

func labFInv(t float32) float32 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

// CIE LAB <-> LCH: cylindrical form of LAB, hue in degrees via atan2(b, a).

func labToLCH(pixel *[3]float32) {
	l, a, b := pixel[0], pixel[1], pixel[2]
	c := math32.Hypot(a, b)
	h := math32.Atan2(b, a) * (180 / math32.Pi)
	if h < 0 {
		h += 360
	}
	pixel[0], pixel[1], pixel[2] = l, c, h
}

func lchToLAB(pixel *[3]float32) {
	l, c, h := pixel[0], pixel[1], pixel[2]
	rad := h * (math32.Pi / 180)
	pixel[0] = l
	pixel[1] = c * math32.Cos(rad)
	pixel[2] = c * math32.Sin(rad)
}
