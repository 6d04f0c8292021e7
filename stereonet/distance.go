// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereonet

import (
	"math"

	"github.com/gonum/floats"
)

// AngularDistance returns the elementwise angular distance in radians
// between two sets of stereonet points. Either set may have length 1,
// in which case it is compared against every point of the other set.
//
// When bidirectional is true the points are treated as undirected
// axes, so every angle folds into [0, π/2]. Otherwise the points are
// vectors from the origin outward and angles fall in [0, π].
func AngularDistance(lon1, lat1, lon2, lat2 []float64, bidirectional bool) []float64 {
	if len(lon1) != len(lat1) || len(lon2) != len(lat2) {
		panic("lon and lat must have equal lengths")
	}
	n := len(lon1)
	if len(lon2) > n {
		n = len(lon2)
	}
	if (len(lon1) != n && len(lon1) != 1) || (len(lon2) != n && len(lon2) != 1) {
		panic("mismatched point set sizes")
	}
	x1, y1, z1 := SphToCart(lon1, lat1)
	x2, y2, z2 := SphToCart(lon2, lat2)
	dist := make([]float64, n)
	for i := range dist {
		j, k := i, i
		if len(x1) == 1 {
			j = 0
		}
		if len(x2) == 1 {
			k = 0
		}
		dot := x1[j]*x2[k] + y1[j]*y2[k] + z1[j]*z2[k]
		angle := math.Acos(dot)
		if math.IsNaN(angle) {
			// Numerical sensitivity near 0 and 180 degrees can
			// push the dot product slightly outside [-1, 1].
			if math.Abs(dot-1) < 1e-4 {
				angle = 0
			} else if math.Abs(dot+1) < 1e-4 {
				angle = math.Pi
			}
		}
		if bidirectional && angle > math.Pi/2 {
			angle = math.Pi - angle
		}
		dist[i] = angle
	}
	return dist
}

// MeanVector returns the direction of the resultant vector of the
// given points and its length r. An r near 1 means the measurements
// are tightly clustered; near 0, dispersed or random. Input and
// output lon/lat are in radians.
func MeanVector(lon, lat []float64) (mlon, mlat, r float64) {
	x, y, z := SphToCart(lon, lat)
	n := float64(len(lon))
	mx, my, mz := floats.Sum(x)/n, floats.Sum(y)/n, floats.Sum(z)/n
	r = math.Sqrt(mx*mx + my*my + mz*mz)
	mlon, mlat = cartToSph(mx, my, mz)
	return mlon, mlat, r
}
