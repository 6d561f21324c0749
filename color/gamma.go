package color

import "github.com/chewxy/math32"

// sRGB <-> linear RGB gamma curve. Breakpoint 0.04045/0.0031308, slope
// 12.92, offset 0.055, exponent 2.4 — the standard piecewise definition.

func srgbToLRGB(pixel *[3]float32) {
	for i := range pixel {
		pixel[i] = gammaDecode(pixel[i])
	}
}

func lrgbToSRGB(pixel *[3]float32) {
	for i := range pixel {
		pixel[i] = gammaEncode(pixel[i])
	}
}

func gammaDecode(v float32) float32 {
	sign := math32.Copysign(1, v)
	abs := math32.Abs(v)
	if abs <= 0.04045 {
		return v / 12.92
	}
	return sign * math32.Pow((abs+0.055)/1.055, 2.4)
}

func gammaEncode(v float32) float32 {
	sign := math32.Copysign(1, v)
	abs := math32.Abs(v)
	if abs <= 0.0031308 {
		return 12.92 * v
	}
	return sign * (1.055*math32.Pow(abs, 1.0/2.4) - 0.055)
}
