// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contour estimates the point density of orientation
// measurements over a regular hemispherical grid, using the classical
// structural-geology counting kernels (Kamb and its smoothed
// variants, Schmidt/1%, and Fisher weighting).
package contour

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/gonum/floats"

	"github.com/strucgeo/stereostat/stereonet"
)

// Grid is a regular grid of density estimates over the hemisphere.
// All three fields are Rows x Cols row-major matrices; Lon varies
// across a row and Lat down a column, both in radians spanning
// [-π/2, π/2]. Density is in the estimation method's units.
type Grid struct {
	Lon, Lat, Density [][]float64
}

// Config controls DensityGrid. The zero value contours poles with the
// exponential Kamb method at sigma 3 on a 100x100 grid with uniform
// weights.
type Config struct {
	// Measurement selects how DensityGrid's columns are
	// interpreted.
	Measurement stereonet.Measurement

	// Method is the density estimation method.
	Method Method

	// Sigma is the number of standard deviations a random sample
	// from a uniform distribution would be expected to vary from
	// even coverage. It sets the counting circle size and so the
	// smoothing, for the Kamb-based methods only. 0 means 3.
	Sigma float64

	// Rows, Cols give the grid size. 0 means 100.
	Rows, Cols int

	// Weights holds one relative weight per measurement. Only the
	// ratios matter; the weights are normalized to a mean of 1
	// before counting. nil means uniform.
	Weights []float64
}

// DensityGrid estimates the point density of the measurements at every
// station of a regular lon/lat grid spanning the hemisphere.
//
// At each station the kernel turns the cosine angular distances to all
// measurements into counts; the weighted count sum, less a 0.5
// continuity correction, divided by the kernel's normalization is the
// station's density. Negative densities are statistically valid (less
// dense than a uniform distribution) but are clamped to zero by
// contouring convention.
func DensityGrid(cfg Config, cols ...[]float64) (*Grid, error) {
	lon, lat, err := cfg.Measurement.LonLat(cols...)
	if err != nil {
		return nil, err
	}
	sigma := cfg.Sigma
	if sigma == 0 {
		sigma = 3
	}
	rows, ncols := cfg.Rows, cfg.Cols
	if rows == 0 {
		rows = 100
	}
	if ncols == 0 {
		ncols = 100
	}

	n := len(lon)
	weights := make([]float64, n)
	if cfg.Weights == nil {
		for i := range weights {
			weights[i] = 1
		}
	} else {
		if len(cfg.Weights) != n {
			return nil, fmt.Errorf("contour: %d weights for %d measurements", len(cfg.Weights), n)
		}
		mean := floats.Sum(cfg.Weights) / float64(n)
		if mean == 0 {
			return nil, fmt.Errorf("contour: weights sum to zero")
		}
		copy(weights, cfg.Weights)
		floats.Scale(1/mean, weights)
	}

	kern, err := newKernel(cfg.Method, float64(n), sigma)
	if err != nil {
		return nil, err
	}

	px, py, pz := stereonet.SphToCart(lon, lat)

	// The counter stations form a regular grid in lon/lat space
	// covering the whole hemisphere.
	lonSteps := vec.Linspace(-math.Pi/2, math.Pi/2, ncols)
	latSteps := vec.Linspace(-math.Pi/2, math.Pi/2, rows)
	stLon := make([]float64, rows*ncols)
	stLat := make([]float64, rows*ncols)
	for r := 0; r < rows; r++ {
		for c := 0; c < ncols; c++ {
			stLon[r*ncols+c] = lonSteps[c]
			stLat[r*ncols+c] = latSteps[r]
		}
	}
	sx, sy, sz := stereonet.SphToCart(stLon, stLat)

	g := &Grid{
		Lon:     make([][]float64, rows),
		Lat:     make([][]float64, rows),
		Density: make([][]float64, rows),
	}
	cosDist := make([]float64, n)
	count := make([]float64, n)
	for r := 0; r < rows; r++ {
		g.Lon[r] = make([]float64, ncols)
		g.Lat[r] = make([]float64, ncols)
		g.Density[r] = make([]float64, ncols)
		for c := 0; c < ncols; c++ {
			i := r*ncols + c
			// This cannot be a convolution since we are not in
			// a cartesian space, so evaluate the kernel at
			// every station. The absolute value makes the
			// count axial.
			for j := range cosDist {
				cosDist[j] = math.Abs(sx[i]*px[j] + sy[i]*py[j] + sz[i]*pz[j])
			}
			kern.counts(cosDist, count)
			floats.Mul(count, weights)
			total := (vec.Sum(count) - 0.5) / kern.units()
			if total < 0 {
				total = 0
			}
			if total == 0 && cfg.Method.smoothed() {
				total = math.SmallestNonzeroFloat64
			}
			g.Lon[r][c] = stLon[i]
			g.Lat[r][c] = stLat[i]
			g.Density[r][c] = total
		}
	}
	return g, nil
}
