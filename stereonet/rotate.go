// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereonet

import "math"

// axis selects the cartesian rotation axis used when spinning the
// stereonet's canonical strike=0 forms into place.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// rotateOne rotates a single lon/lat point, given in degrees, by theta
// degrees about the chosen axis. This simulates rotating a physical
// stereonet. The result is in radians.
func rotateOne(lon, lat, theta float64, ax axis) (rlon, rlat float64) {
	sin, cos := math.Sincos(radians(theta))
	x, y, z := sphToCart(radians(lon), radians(lat))
	switch ax {
	case axisX:
		y, z = y*cos+z*sin, -y*sin+z*cos
	case axisY:
		x, z = x*cos-z*sin, x*sin+z*cos
	case axisZ:
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return cartToSph(x, y, z)
}

// rotate is rotateOne over parallel slices with a single theta.
func rotate(lon, lat []float64, theta float64, ax axis) (rlon, rlat []float64) {
	rlon = make([]float64, len(lon))
	rlat = make([]float64, len(lon))
	for i := range lon {
		rlon[i], rlat[i] = rotateOne(lon[i], lat[i], theta, ax)
	}
	return rlon, rlat
}
