package color

import (
	"math/rand/v2"
	"testing"

	"github.com/deepteams/pixelscript/ir"
)

func within(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestIdentityConversionIsNoop(t *testing.T) {
	spaces := []ir.Space{SRGB, HSV, LRGB, XYZ, LAB, LCH}
	for _, s := range spaces {
		px := [3]float32{0.2, 0.35, 0.95}
		orig := px
		Convert(s, s, &px)
		if px != orig {
			t.Errorf("Convert(%v, %v, ...) mutated pixel: got %v want %v", s, s, px, orig)
		}
	}
}

func TestRoundTripAllPairs(t *testing.T) {
	spaces := []ir.Space{SRGB, HSV, LRGB, XYZ, LAB, LCH}
	rng := rand.New(rand.NewPCG(1, 2))

	for _, a := range spaces {
		for _, b := range spaces {
			if a == b {
				continue
			}
			for i := 0; i < 200; i++ {
				rgb := [3]float32{rng.Float32(), rng.Float32(), rng.Float32()}
				px := rgb
				Convert(SRGB, a, &px)
				start := px

				Convert(a, b, &px)
				Convert(b, a, &px)

				// LCH hue is undefined when chroma is ~0; skip those cases
				// when the round trip starts in LCH.
				if a == LCH && within(start[1], 0, 1e-4) {
					continue
				}
				for c := 0; c < 3; c++ {
					if !within(start[c], px[c], 5e-3) {
						t.Fatalf("%v -> %v -> %v round trip: channel %d start=%v got=%v", a, b, a, c, start[c], px[c])
					}
				}
			}
		}
	}
}

func TestSRGBRoundTripViaAllSpaces(t *testing.T) {
	spaces := []ir.Space{SRGB, HSV, LRGB, XYZ, LAB, LCH}
	rng := rand.New(rand.NewPCG(42, 7))

	for _, s := range spaces {
		if s == LCH {
			continue // hue undefined at low chroma; covered loosely elsewhere
		}
		for i := 0; i < 2000; i++ {
			rgb := [3]float32{rng.Float32(), rng.Float32(), rng.Float32()}
			px := rgb
			Convert(SRGB, s, &px)
			Convert(s, SRGB, &px)
			for c := 0; c < 3; c++ {
				if !within(rgb[c], px[c], 1e-3) {
					t.Fatalf("space %v: channel %d start=%v got=%v", s, c, rgb[c], px[c])
				}
			}
		}
	}
}

// Test vectors grounded on original_source/src/pbcore/color.rs, adjusted
// for the spec's LRGB-as-its-own-space split and XYZ's [0,1] nominal
// range (the original scales XYZ by 100 and folds the gamma step into its
// srgb_to_xyz; this module keeps the gamma step as its own LRGB link).
func TestSRGBToXYZKnownVector(t *testing.T) {
	px := [3]float32{0.2000, 0.3500, 0.9500}
	Convert(SRGB, XYZ, &px)
	want := [3]float32{0.21017, 0.14314, 0.85839}
	for i := range px {
		if !within(px[i], want[i], 2e-3) {
			t.Errorf("channel %d: got %v want %v", i, px[i], want[i])
		}
	}
}

func TestXYZToLABUsesCIEFormula(t *testing.T) {
	// Regression for the Open Question about xyz_to_lab calling the wrong
	// setter: L must depend on Y only through the CIE cube-root curve, not
	// be a straight copy of an XYZ component.
	px := [3]float32{0.21017, 0.14314, 0.85839}
	xyzToLAB(&px)
	if within(px[0], 0.14314, 1e-4) {
		t.Fatalf("xyz_to_lab looks like it passed Y through unmodified: got L=%v", px[0])
	}
	want := [3]float32{44.679, 40.806, -80.139}
	for i := range px {
		if !within(px[i], want[i], 0.5) {
			t.Errorf("channel %d: got %v want %v", i, px[i], want[i])
		}
	}
}

func TestLCHHueDegrees(t *testing.T) {
	px := [3]float32{44.679, 40.806, -80.139}
	labToLCH(&px)
	want := [3]float32{44.679, 89.930, 296.985}
	for i := range px {
		if !within(px[i], want[i], 0.5) {
			t.Errorf("channel %d: got %v want %v", i, px[i], want[i])
		}
	}
}

func TestHSVRoundTripKnownVector(t *testing.T) {
	px := [3]float32{0.2000, 0.3500, 0.9500}
	srgbToHSV(&px)
	want := [3]float32{0.6333, 0.7894, 0.9500}
	for i := range px {
		if !within(px[i], want[i], 1e-3) {
			t.Errorf("channel %d: got %v want %v", i, px[i], want[i])
		}
	}
	hsvToSRGB(&px)
	back := [3]float32{0.2000, 0.3500, 0.9500}
	for i := range px {
		if !within(px[i], back[i], 1e-3) {
			t.Errorf("round trip channel %d: got %v want %v", i, px[i], back[i])
		}
	}
}

func TestConvertAlphaLeavesAlphaUntouched(t *testing.T) {
	px := [4]float32{0.2, 0.35, 0.95, 0.42}
	ConvertAlpha(SRGB, LCH, &px)
	if px[3] != 0.42 {
		t.Errorf("alpha channel mutated: got %v want 0.42", px[3])
	}
}

func TestIRGBHexRoundTrip(t *testing.T) {
	cases := [][3]uint8{
		{0, 0, 0},
		{255, 255, 255},
		{18, 52, 86},
	}
	for _, c := range cases {
		hex := IRGBToHex(c)
		got, err := HexToIRGB(hex)
		if err != nil {
			t.Fatalf("HexToIRGB(%q): %v", hex, err)
		}
		if got != c {
			t.Errorf("round trip %v -> %s -> %v", c, hex, got)
		}
	}
}

func TestHexToIRGBRejectsInvalid(t *testing.T) {
	bad := []string{"#12345", "#1234567", "#GGHHII", "", "#12 345"}
	for _, h := range bad {
		if _, err := HexToIRGB(h); err == nil {
			t.Errorf("HexToIRGB(%q): expected error, got none", h)
		}
	}
}

func TestSRGBToIRGBClamps(t *testing.T) {
	px := [3]float32{-1.0, 0.5, 2.0}
	got := SRGBToIRGB(px)
	want := [3]uint8{0, 128, 255}
	if got != want {
		t.Errorf("got %v want %v", got, want)
	}
}
