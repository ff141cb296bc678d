package trajectory

import "math"

// splineInterpolator is a monotonicity-preserving cubic Hermite interpolator
// over parallel sample arrays, with per-sample tangent slopes computed by the
// Fritsch-Carlson method: wherever the underlying data is monotone between
// consecutive samples, so is the fitted cubic.
type splineInterpolator struct {
	x []float64
	y []float64
	m []float64 // tangent slope at each sample
}

// newSplineInterpolator fits an interpolator to at least two samples.
// Descending x inputs are stored reversed so the samples always ascend.
func newSplineInterpolator(x, y []float64) *splineInterpolator {
	n := len(x)
	xs := make([]float64, n)
	ys := make([]float64, n)
	if x[0] > x[n-1] {
		for i := 0; i < n; i++ {
			xs[i] = x[n-1-i]
			ys[i] = y[n-1-i]
		}
	} else {
		copy(xs, x)
		copy(ys, y)
	}

	// finite-difference secant slopes
	d := make([]float64, n-1)
	for i := range d {
		h := xs[i+1] - xs[i]
		if h == 0 {
			// coincident samples contribute a flat secant
			d[i] = 0
			continue
		}
		d[i] = (ys[i+1] - ys[i]) / h
	}

	// initial tangent estimates: one-sided at the ends, averaged between
	m := make([]float64, n)
	m[0] = d[0]
	m[n-1] = d[n-2]
	for i := 1; i < n-1; i++ {
		m[i] = (d[i-1] + d[i]) / 2
	}

	// Fritsch-Carlson monotonicity correction
	for i := 0; i < n-1; i++ {
		if d[i] == 0 {
			m[i] = 0
			m[i+1] = 0
			continue
		}
		a := m[i] / d[i]
		b := m[i+1] / d[i]
		if h := math.Hypot(a, b); h > 3 {
			t := 3 / h
			m[i] = t * a * d[i]
			m[i+1] = t * b * d[i]
		}
	}

	return &splineInterpolator{x: xs, y: ys, m: m}
}

// domain returns the fitted input range.
func (si *splineInterpolator) domain() (float64, float64) {
	return si.x[0], si.x[len(si.x)-1]
}

// interpolate evaluates the piecewise cubic at v. Values outside the sampled
// domain clamp to the nearest endpoint sample; there is no extrapolation.
func (si *splineInterpolator) interpolate(v float64) float64 {
	n := len(si.x)
	if v <= si.x[0] {
		return si.y[0]
	}
	if v >= si.x[n-1] {
		return si.y[n-1]
	}

	// locate the bracketing interval
	i := 0
	for i < n-2 && v > si.x[i+1] {
		i++
	}
	h := si.x[i+1] - si.x[i]
	if h == 0 {
		return si.y[i]
	}

	// cubic Hermite basis on the normalized interval position
	t := (v - si.x[i]) / h
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*si.y[i] + h10*h*si.m[i] + h01*si.y[i+1] + h11*h*si.m[i+1]
}
