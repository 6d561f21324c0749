package pixelscript

import (
	"fmt"
	"math"
	"runtime"

	"github.com/deepteams/pixelscript/vm"
	"golang.org/x/sync/errgroup"
)

// singleThreadFloats is the buffer size (in float32 elements, 100 pixels)
// below which Process runs on the calling goroutine rather than paying for
// partitioning and goroutine setup.
const singleThreadFloats = 400

// Process evaluates program against every pixel of pixels, a flat RGBA
// float32 buffer whose length must be a multiple of 4. width describes the
// full image the buffer represents; height is derived as
// (len(pixels)/4)/width. width == 0 means the image has no meaningful row
// length (e.g. a 1-D swatch), in which case both width and height are
// treated as unbounded and position-derived operands address the buffer as
// a single row.
//
// For buffers at or above singleThreadFloats elements, Process partitions
// the buffer into contiguous, 4-float-aligned chunks and evaluates them
// concurrently across runtime.GOMAXPROCS(0) goroutines, each with its own
// random source. A panic inside any chunk is recovered and returned as an
// error from Process rather than crashing the process.
func Process(program []Operation, pixels []float32, width int, externals *[9]float32) error {
	if len(pixels)%4 != 0 {
		return fmt.Errorf("pixelscript: pixel buffer length %d is not a multiple of 4", len(pixels))
	}

	effectiveWidth := width
	height := 0
	if effectiveWidth == 0 {
		effectiveWidth = math.MaxInt32
		height = math.MaxInt32
	} else {
		height = (len(pixels) / 4) / effectiveWidth
	}

	total := len(pixels)
	if total < singleThreadFloats {
		vm.ProcessSegment(program, pixels, 0, 0, effectiveWidth, height, externals, nil)
		return nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 1
	}

	chunkSize := (total / 4 / numWorkers) * 4
	if chunkSize == 0 {
		chunkSize = 4
	}

	var g errgroup.Group
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		if start >= total {
			break
		}
		end := start + chunkSize
		if i == numWorkers-1 || end > total {
			end = total
		}

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("pixelscript: panic processing pixels [%d:%d]: %v", start, end, r)
				}
			}()
			p := start / 4
			x := p % effectiveWidth
			y := p / effectiveWidth
			vm.ProcessSegment(program, pixels[start:end], x, y, effectiveWidth, height, externals, vm.NewRand())
			return nil
		})
	}

	return g.Wait()
}
