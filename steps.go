package surfgen

import "math"

// StepList returns the values from, from+step, from+2*step... up to and
// including to. A small slack absorbs accumulated round-off so that to is
// included when it lies on the step grid. A step of zero, or one pointing
// away from to, returns nil.
func StepList(from, to, step float64) []float64 {
	if step == 0 || math.IsNaN(step) || math.IsNaN(from) || math.IsNaN(to) ||
		math.IsInf(step, 0) || math.IsInf(from, 0) || math.IsInf(to, 0) {
		return nil
	}
	const slack = 1e-8
	if step > 0 {
		to += slack
	} else {
		to -= slack
	}
	var list []float64
	for val := from; (val-to)/step < 0; val += step {
		list = append(list, val)
	}
	return list
}

// ClampList returns a step sequence starting at min, followed by the
// values of list lying strictly inside (min, max), ending with
// max(min+minDelta, max). The result always has at least two points so
// it can feed generators during animation, even when min and max cross.
func ClampList(list []float64, min, max, minDelta float64) []float64 {
	const eps = 1e-8
	clamped := make([]float64, 0, len(list)+2)
	clamped = append(clamped, min)
	for _, v := range list {
		if min+eps < v && v < max-eps {
			clamped = append(clamped, v)
		}
	}
	return append(clamped, math.Max(min+minDelta, max))
}

// Subdivide returns n+1 evenly spaced values from from to to, both
// included. n < 1 returns the single value from.
func Subdivide(from, to float64, n int) []float64 {
	if n < 1 {
		return []float64{from}
	}
	list := make([]float64, n+1)
	for i := range list {
		list[i] = Mix(from, to, float64(i)/float64(n))
	}
	// Exact end point regardless of round-off.
	list[n] = to
	return list
}
