// Package pixelscript implements a small domain-specific language for
// per-pixel color arithmetic: programs written in the language are parsed
// once into an intermediate representation and then evaluated independently
// for every pixel of a flat RGBA float32 buffer, optionally in parallel.
//
// The package supports:
//   - Six addressable color spaces (sRGB, HSV, linear RGB, CIE XYZ, CIE LAB,
//     CIE LCH) with automatic conversion along a fixed chain topology
//   - Arithmetic, elementary-function, and comparison operators over pixel
//     channels and a per-pixel scratch register file
//   - Conditional branches and bounded goto loops
//   - Read-only contextual operands (pixel row/column, normalized position,
//     image dimensions, random samples)
//   - External per-invocation parameters threaded into every pixel
//   - Automatic partitioning of large buffers across worker goroutines
//
// Basic usage:
//
//	program, errs := pixelscript.Parse("r + 0.1", pixelscript.SRGB)
//	if len(errs) > 0 {
//		// errs are non-fatal diagnostics; program still runs as parsed.
//	}
//	err := pixelscript.Process(program, pixels, width, nil)
package pixelscript
