package color

// linear RGB <-> XYZ, D65 primaries (the standard sRGB working matrix; see
// the sRGB entry on Wikipedia). No 100x scaling: XYZ is nominal [0,1] here,
// unlike the traditional [0,100] convention.

func lrgbToXYZ(pixel *[3]float32) {
	r, g, b := pixel[0], pixel[1], pixel[2]
	pixel[0] = 0.4124564*r + 0.3575761*g + 0.1804375*b
	pixel[1] = 0.2126729*r + 0.7151522*g + 0.0721750*b
	pixel[2] = 0.0193339*r + 0.1191920*g + 0.9503041*b
}

func xyzToLRGB(pixel *[3]float32) {
	x, y, z := pixel[0], pixel[1], pixel[2]
	pixel[0] = 3.2404542*x - 1.5371385*y - 0.4985314*z
	pixel[1] = -0.9692660*x + 1.8760108*y + 0.0415560*z
	pixel[2] = 0.0556434*x - 0.2040259*y + 1.0572252*z
}
