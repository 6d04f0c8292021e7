// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stereonet converts between strike/dip, plunge/bearing, rake,
// and points on a lower-hemisphere stereonet, and provides the angular
// statistics primitives built on those conversions.
//
// The stereonet lives in <lon, lat> coordinates:
//
//	             <0,90>
//	              ***
//	   <-90,0> *       * <90,0>
//	           *       *
//	              ***
//	            <0,-90>
//
// For strike=0 everything is simple: a plane is a line of constant
// longitude at lon=90-dip, a line is a point at lon=0, lat=90-plunge,
// and a rake is a point at lon=90-dip, lat=90-rake. Every conversion
// therefore builds the strike=0 (or bearing=0) canonical form and
// rotates it into place about the stereonet's polar axis; a rotation
// matrix is much simpler than the spherical trig otherwise necessary.
//
// Strikes and dips follow the right-hand rule: facing in the strike
// direction, the plane dips to the right.
//
// Functions taking strikes, dips, plunges, bearings, or rake angles
// operate in degrees. Longitude/latitude arguments and results are
// always in radians. Parallel argument slices must have equal lengths.
package stereonet

import "math"

func radians(deg float64) float64 { return deg * (math.Pi / 180) }

func degrees(rad float64) float64 { return rad * (180 / math.Pi) }

// SphToCart converts longitudes and latitudes given in radians to
// cartesian coordinates, where x=0, y=0, z=0 is the center of the
// globe.
func SphToCart(lon, lat []float64) (x, y, z []float64) {
	x = make([]float64, len(lon))
	y = make([]float64, len(lon))
	z = make([]float64, len(lon))
	for i := range lon {
		x[i], y[i], z[i] = sphToCart(lon[i], lat[i])
	}
	return x, y, z
}

func sphToCart(lon, lat float64) (x, y, z float64) {
	sinLon, cosLon := math.Sincos(lon)
	sinLat, cosLat := math.Sincos(lat)
	return cosLat * cosLon, cosLat * sinLon, sinLat
}

// CartToSph is the inverse of SphToCart. The vectors need not be
// normalized. A zero-length vector maps to lon=0, lat=0 rather than
// producing NaNs.
func CartToSph(x, y, z []float64) (lon, lat []float64) {
	lon = make([]float64, len(x))
	lat = make([]float64, len(x))
	for i := range x {
		lon[i], lat[i] = cartToSph(x[i], y[i], z[i])
	}
	return lon, lat
}

func cartToSph(x, y, z float64) (lon, lat float64) {
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		r = 1e-15
	}
	return math.Atan2(y, x), math.Asin(z / r)
}

// Antipode returns the opposite point on the globe for each input
// point. Input and output are in radians.
func Antipode(lon, lat []float64) (alon, alat []float64) {
	alon = make([]float64, len(lon))
	alat = make([]float64, len(lon))
	for i := range lon {
		x, y, z := sphToCart(lon[i], lat[i])
		alon[i], alat[i] = cartToSph(-x, -y, -z)
	}
	return alon, alat
}
