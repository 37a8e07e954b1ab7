// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through p0..p3 at t,
// where t in [0, 1] runs from p1 to p2.
func CubicInterpolate(p0, p1, p2, p3, t float32) float32 {
	m1 := (p2 - p0) * 0.5
	m2 := (p3 - p1) * 0.5
	t2 := t * t
	t3 := t2 * t

	return (2*t3-3*t2+1)*p1 + (t3-2*t2+t)*m1 + (-2*t3+3*t2)*p2 + (t3-t2)*m2
}
