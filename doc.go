// Package fractal renders the Mandelbrot set interactively on top of
// [Ebitengine].
//
// A [Session] owns one window, one renderer and the current [ViewState]
// (zoom and pan offset). Each call to [Session.Step] drains pending input,
// applies clicks on the on-screen buttons to the view, recomputes every
// pixel and presents the frame.
//
// # Quick start
//
//	if err := fractal.Run(fractal.NewEbitenBackend(), fractal.DefaultConfig()); err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(1)
//	}
//
// # Rendering
//
// Pixels map linearly onto the complex plane through [ViewState.PixelToPlane].
// At zoom 1 the view spans [-2.5, 1.0] horizontally and [-1.0, 1.0]
// vertically. [Escape] counts iterations of z = z*z + c up to [MaxIter], and
// [ColorForCount] turns the count into a hue band ((count*10) mod 360)
// rendered at full saturation and value.
//
// # Controls
//
// [DefaultButtons] places zoom in/out at (10,10) and (70,10), and pan
// left/right/up/down along the row at y = 70. Zoom steps by a factor of
// [ZoomStep]; pan steps by [PanStep]/zoom. A pressed button briefly flashes
// (a [gween] tween). Closing the window or pressing Escape quits.
//
// # Backends
//
// [EbitenBackend] opens a real window. [HeadlessBackend] draws into an
// in-memory [Canvas] and replays a JSON [Script], for tests and automated
// runs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package fractal
