// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"fmt"
	"math"
)

// Method selects the counting kernel used for density estimation.
type Method int

const (
	// ExponentialKamb is a modified Kamb method with exponential
	// smoothing (Vollmer, 1995). Units are the number of standard
	// deviations by which the density differs from uniform. This
	// is the zero value and therefore the default.
	ExponentialKamb Method = iota

	// LinearKamb is a modified Kamb method with linear smoothing
	// (Vollmer, 1995). Units as for ExponentialKamb.
	LinearKamb

	// SquareKamb is a modified Kamb method with inverse-square
	// smoothing (Vollmer, 1995). Units as for ExponentialKamb.
	SquareKamb

	// Kamb is Kamb's original counting method (Kamb, 1959) with no
	// smoothing. Units as for ExponentialKamb.
	Kamb

	// Schmidt is the traditional "1%" method: it counts points
	// within a circle covering 1% of the hemisphere. It does not
	// account for sample size. Units are points per 1% area.
	Schmidt

	// Fisher weights counts by a tabulated Fisher probability
	// curve. Units are points per 1% area.
	Fisher
)

var methodNames = []string{
	"exponential_kamb", "linear_kamb", "square_kamb", "kamb", "schmidt", "fisher",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod maps the conventional method names to a Method.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if s == name {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("unknown density method %q", s)
}

// smoothed reports whether the method produces a continuous density
// estimate. A zero contour is not meaningful for smoothed methods, so
// DensityGrid bumps their exact-zero cells to the smallest positive
// float.
func (m Method) smoothed() bool {
	return m != Kamb && m != Schmidt
}

// A kernel maps the cosine distances between one counter station and
// every measurement to per-point counts. units converts the summed,
// weighted counts (after the shared -0.5 continuity correction) into
// the method's output unit.
type kernel interface {
	counts(cosDist, out []float64)
	units() float64
}

// kambRadius is the critical cosine distance of the Kamb counting
// circle for n points at sigma standard deviations.
func kambRadius(n, sigma float64) float64 {
	return 1 - sigma*sigma/(n+sigma*sigma)
}

// kambUnits normalizes Kamb-style counts into standard deviations
// from a uniform density.
func kambUnits(n, radius float64) float64 {
	return math.Sqrt(n * radius * (1 - radius))
}

func newKernel(m Method, n, sigma float64) (kernel, error) {
	switch m {
	case ExponentialKamb:
		f := 2 * (1 + n/(sigma*sigma))
		return &expKamb{f: f, scale: math.Sqrt(n * (f/2 - 1) / (f * f))}, nil
	case LinearKamb:
		r := kambRadius(n, sigma)
		return &linearKamb{radius: r, f: 2 / (1 - r), scale: kambUnits(n, r)}, nil
	case SquareKamb:
		r := kambRadius(n, sigma)
		return &squareKamb{radius: r, f: 3 / ((1 - r) * (1 - r)), scale: kambUnits(n, r)}, nil
	case Kamb:
		r := kambRadius(n, sigma)
		return &countKamb{radius: r, scale: kambUnits(n, r)}, nil
	case Schmidt:
		return &schmidtCount{offset: 0.5 / n, scale: n * 0.01}, nil
	case Fisher:
		return &fisherCount{offset: 0.5 / n, scale: n * 0.01}, nil
	}
	return nil, fmt.Errorf("unknown density method %d", int(m))
}

type expKamb struct{ f, scale float64 }

func (k *expKamb) counts(cosDist, out []float64) {
	for i, d := range cosDist {
		out[i] = math.Exp(k.f * (d - 1))
	}
}

func (k *expKamb) units() float64 { return k.scale }

type linearKamb struct{ radius, f, scale float64 }

func (k *linearKamb) counts(cosDist, out []float64) {
	for i, d := range cosDist {
		// Zero outside the counting circle, not dropped, so the
		// counts stay aligned with per-point weights.
		if d < k.radius {
			out[i] = 0
			continue
		}
		out[i] = k.f * (d - k.radius)
	}
}

func (k *linearKamb) units() float64 { return k.scale }

type squareKamb struct{ radius, f, scale float64 }

func (k *squareKamb) counts(cosDist, out []float64) {
	for i, d := range cosDist {
		if d < k.radius {
			out[i] = 0
			continue
		}
		out[i] = k.f * (d - k.radius) * (d - k.radius)
	}
}

func (k *squareKamb) units() float64 { return k.scale }

type countKamb struct{ radius, scale float64 }

func (k *countKamb) counts(cosDist, out []float64) {
	for i, d := range cosDist {
		if d >= k.radius {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}

func (k *countKamb) units() float64 { return k.scale }

type schmidtCount struct{ offset, scale float64 }

func (k *schmidtCount) counts(cosDist, out []float64) {
	for i, d := range cosDist {
		var c float64
		if 1-d <= 0.01 {
			c = 1
		}
		// The offset cancels the -0.5 correction the Kamb
		// methods need.
		out[i] = c + k.offset
	}
}

func (k *schmidtCount) units() float64 { return k.scale }

type fisherCount struct{ offset, scale float64 }

func (k *fisherCount) counts(cosDist, out []float64) {
	for i, d := range cosDist {
		if d > 1 {
			d = 1
		}
		angle := math.Acos(d) * (180 / math.Pi)
		out[i] = fisherProb(angle) + k.offset
	}
}

func (k *fisherCount) units() float64 { return k.scale }
