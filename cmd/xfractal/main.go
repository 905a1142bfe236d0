// Command xfractal opens an interactive Mandelbrot viewer.
// Click + and - to zoom and the arrow buttons to pan. Close the window or
// press Escape to quit.
package main

import (
	"fmt"
	"os"

	fractal "github.com/clouds1729/xFractal-Visualizer"
)

func main() {
	backend := fractal.NewEbitenBackend()
	if err := fractal.Run(backend, fractal.DefaultConfig()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
