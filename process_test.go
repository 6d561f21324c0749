package pixelscript

import (
	"testing"

	"github.com/deepteams/pixelscript/vm"
)

func within(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestProcessIdentityScenario(t *testing.T) {
	program, errs := Parse("r = r", SRGB)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	pixels := []float32{0.2, 0.35, 0.95, 1.0}
	if err := Process(program, pixels, 1, nil); err != nil {
		t.Fatalf("Process: %v", err)
	}
	want := []float32{0.2, 0.35, 0.95, 1.0}
	for i := range pixels {
		if pixels[i] != want[i] {
			t.Errorf("channel %d: got %v want %v", i, pixels[i], want[i])
		}
	}
}

func TestProcessAddConstantScenario(t *testing.T) {
	program, errs := Parse("r + 0.5", SRGB)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	pixels := []float32{0.1, 0.2, 0.3, 1.0}
	if err := Process(program, pixels, 1, nil); err != nil {
		t.Fatalf("Process: %v", err)
	}
	want := []float32{0.6, 0.2, 0.3, 1.0}
	for i := range pixels {
		if !within(pixels[i], want[i], 1e-6) {
			t.Errorf("channel %d: got %v want %v", i, pixels[i], want[i])
		}
	}
}

func TestProcessConditionalScenario(t *testing.T) {
	program, errs := Parse("if r gt 0.5 r = 0", SRGB)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	pixels := []float32{0.9, 0.1, 0.1, 1.0, 0.2, 0.1, 0.1, 1.0}
	if err := Process(program, pixels, 2, nil); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if pixels[0] != 0 {
		t.Errorf("pixel 0: got %v want 0", pixels[0])
	}
	if pixels[4] != 0.2 {
		t.Errorf("pixel 1: got %v want 0.2 (unchanged)", pixels[4])
	}
}

func TestProcessSwapScenario(t *testing.T) {
	program, errs := Parse("swap r b", SRGB)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	pixels := []float32{0.1, 0.2, 0.3, 1.0}
	if err := Process(program, pixels, 1, nil); err != nil {
		t.Fatalf("Process: %v", err)
	}
	want := []float32{0.3, 0.2, 0.1, 1.0}
	for i := range pixels {
		if pixels[i] != want[i] {
			t.Errorf("channel %d: got %v want %v", i, pixels[i], want[i])
		}
	}
}

func TestProcessExternalScenario(t *testing.T) {
	program, errs := Parse("r = e1", SRGB)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	pixels := []float32{0, 0, 0, 1.0}
	ext := [9]float32{0.77}
	if err := Process(program, pixels, 1, &ext); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !within(pixels[0], 0.77, 1e-6) {
		t.Errorf("channel 0: got %v want 0.77", pixels[0])
	}
}

func TestProcessSpaceDetourScenario(t *testing.T) {
	program, errs := Parse("lch\nrgb", SRGB)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	pixels := []float32{0.2, 0.35, 0.95, 1.0}
	orig := append([]float32(nil), pixels...)
	if err := Process(program, pixels, 1, nil); err != nil {
		t.Fatalf("Process: %v", err)
	}
	for i := 0; i < 3; i++ {
		if !within(pixels[i], orig[i], 1e-3) {
			t.Errorf("channel %d: got %v want %v", i, pixels[i], orig[i])
		}
	}
}

func TestProcessRejectsMisalignedBuffer(t *testing.T) {
	program, _ := Parse("r = r", SRGB)
	err := Process(program, []float32{0.1, 0.2, 0.3}, 1, nil)
	if err == nil {
		t.Fatal("expected an error for a buffer length not a multiple of 4")
	}
}

// TestProcessPartitioningIsEquivalentToSingleThread checks that, for a
// program with no Rand/Row/Col/XNorm/YNorm dependence, evaluating a large
// buffer through the partitioner (one chunk per GOMAXPROCS worker) produces output
// identical to evaluating the whole buffer as a single segment.
func TestProcessPartitioningIsEquivalentToSingleThread(t *testing.T) {
	program, errs := Parse("r + 0.1; g * 0.5; b - 0.2", SRGB)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	width, height := 64, 64
	n := width * height
	base := make([]float32, n*4)
	for i := range base {
		base[i] = float32(i%97) / 97
	}

	multi := append([]float32(nil), base...)
	if err := Process(program, multi, width, nil); err != nil {
		t.Fatalf("Process: %v", err)
	}

	single := append([]float32(nil), base...)
	vm.ProcessSegment(program, single, 0, 0, width, height, nil, vm.NewRand())

	for i := range multi {
		if multi[i] != single[i] {
			t.Fatalf("index %d: multi-threaded=%v single-threaded=%v", i, multi[i], single[i])
		}
	}
}
