package color

import "github.com/chewxy/math32"

// sRGB <-> HSV, hue in [0,1). Grounded on the original project's
// easyrgb-derived formulation, adapted to keep hue in the unit interval
// rather than degrees (the spec's DSL channel for HSV hue is unit-ranged).

func srgbToHSV(pixel *[3]float32) {
	r, g, b := pixel[0], pixel[1], pixel[2]
	vmin := math32.Min(r, math32.Min(g, b))
	vmax := math32.Max(r, math32.Max(g, b))
	delta := vmax - vmin

	v := vmax
	var h, s float32
	if delta == 0 {
		h, s = 0, 0
	} else {
		s = delta / vmax

		dr := (((vmax - r) / 6.0) + (delta / 2.0)) / delta
		dg := (((vmax - g) / 6.0) + (delta / 2.0)) / delta
		db := (((vmax - b) / 6.0) + (delta / 2.0)) / delta

		switch vmax {
		case r:
			h = db - dg
		case g:
			h = (1.0 / 3.0) + dr - db
		default:
			h = (2.0 / 3.0) + dg - dr
		}

		if h < 0 {
			h += 1
		} else if h > 1 {
			h -= 1
		}
	}
	pixel[0], pixel[1], pixel[2] = h, s, v
}

func hsvToSRGB(pixel *[3]float32) {
	h, s, v := pixel[0], pixel[1], pixel[2]
	if s == 0 {
		pixel[0], pixel[1], pixel[2] = v, v, v
		return
	}

	varH := h * 6.0
	if varH == 6.0 {
		varH = 0
	}
	varI := math32.Trunc(varH)
	var1 := v * (1 - s)
	var2 := v * (1 - s*(varH-varI))
	var3 := v * (1 - s*(1-(varH-varI)))

	switch varI {
	case 0:
		pixel[0], pixel[1], pixel[2] = v, var3, var1
	case 1:
		pixel[0], pixel[1], pixel[2] = var2, v, var1
	case 2:
		pixel[0], pixel[1], pixel[2] = var1, v, var3
	case 3:
		pixel[0], pixel[1], pixel[2] = var1, var2, v
	case 4:
		pixel[0], pixel[1], pixel[2] = var3, var1, v
	default:
		pixel[0], pixel[1], pixel[2] = v, var1, var2
	}
}
