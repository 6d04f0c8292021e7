// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereonet

import (
	"errors"
	"math"
)

var ErrSampleSize = errors.New("sample is too small")

// FisherStats summarizes a set of directed measurements with the
// Fisher distribution's confidence statistics.
type FisherStats struct {
	// Lon, Lat is the mean direction in radians.
	Lon, Lat float64

	// R is the resultant length of the mean vector, in [0, 1].
	R float64

	// Angle is the half-apical angle in degrees of the small
	// circle around the mean direction at the requested
	// confidence.
	Angle float64

	// Kappa is the dispersion parameter. It approaches infinity
	// for nearly parallel vectors and zero for highly dispersed
	// ones.
	Kappa float64
}

// Fisher computes the Fisher distribution statistics of the given
// points at the given confidence level in percent (e.g. 95). The
// confidence statistics are undefined for fewer than two points, so
// that returns ErrSampleSize.
func Fisher(lon, lat []float64, conf float64) (*FisherStats, error) {
	if len(lon) < 2 {
		return nil, ErrSampleSize
	}
	mlon, mlat, r := MeanVector(lon, lat)
	n := float64(len(lon))
	R := n * r // length of the un-normalized vector sum
	p := (100 - conf) / 100
	angle := math.Acos(1 - (n-R)/R*(math.Pow(1/p, 1/(n-1))-1))
	kappa := (n - 1) / (n - R)
	return &FisherStats{
		Lon:   mlon,
		Lat:   mlat,
		R:     r,
		Angle: degrees(angle),
		Kappa: kappa,
	}, nil
}
