package fractal

// Escape returns the number of iterations of z = z*z + c, starting at z = 0
// with c = (x0, y0), before |z|^2 reaches 4 or maxIter iterations have run.
// A result equal to maxIter means the point never escaped.
func Escape(x0, y0 float64, maxIter int) int {
	var x, y float64
	n := 0
	for x*x+y*y < 4 && n < maxIter {
		x, y = x*x-y*y+x0, 2*x*y+y0
		n++
	}
	return n
}
