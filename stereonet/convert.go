// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereonet

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// Pole returns the stereonet position of the pole to each plane given
// by strike and dip in degrees. Dips over 90 are normalized by
// flipping the dip and taking the opposite end of the strike.
func Pole(strike, dip []float64) (lon, lat []float64) {
	if len(strike) != len(dip) {
		panic("len(strike) != len(dip)")
	}
	lon = make([]float64, len(strike))
	lat = make([]float64, len(strike))
	for i := range strike {
		s, d := strike[i], dip[i]
		if d > 90 {
			d = 180 - d
			s += 180
		}
		// For strike=0 the pole sits at lon=-dip, lat=0.
		lon[i], lat[i] = rotateOne(-d, 0, s, axisX)
	}
	return lon, lat
}

// Plane traces the great-circle arc of the plane with the given strike
// and dip in degrees as segments points on the stereonet.
func Plane(strike, dip float64, segments int) (lon, lat []float64) {
	if dip > 90 {
		dip = 180 - dip
		strike += 180
	}
	// A line of constant longitude, rotated by the strike.
	lon = make([]float64, segments)
	for i := range lon {
		lon[i] = 90 - dip
	}
	lat = vec.Linspace(-90, 90, segments)
	return rotate(lon, lat, strike, axisX)
}

// Rake returns the stereonet position of each linear feature lying in
// the plane given by strike and dip, at the given rake angle. A rake
// of zero is the "right-hand" direction indicated by the strike; 180
// or a negative angle is the opposite direction. All in degrees.
//
// Dips over 90 normalize as in Pole, with the rake angle reflected to
// 180-angle so it keeps measuring from the stated strike direction.
func Rake(strike, dip, angle []float64) (lon, lat []float64) {
	if len(strike) != len(dip) || len(strike) != len(angle) {
		panic("strike, dip, and angle must have equal lengths")
	}
	lon = make([]float64, len(strike))
	lat = make([]float64, len(strike))
	for i := range strike {
		s, d, a := strike[i], dip[i], angle[i]
		if a < 0 {
			a += 180
		}
		if d > 90 {
			s, d, a = s+180, 180-d, 180-a
		}
		lon[i], lat[i] = rotateOne(90-d, 90-a, s, axisX)
	}
	return lon, lat
}

// Line returns the stereonet position of each linear feature given by
// plunge and bearing in degrees.
func Line(plunge, bearing []float64) (lon, lat []float64) {
	if len(plunge) != len(bearing) {
		panic("len(plunge) != len(bearing)")
	}
	lon = make([]float64, len(plunge))
	lat = make([]float64, len(plunge))
	for i := range plunge {
		lon[i], lat[i] = rotateOne(0, 90-plunge[i], bearing[i], axisX)
	}
	return lon, lat
}

// Cone traces the small circle centered on the line with the given
// plunge and bearing, with apical angle (radius) angle, as segments
// points on the stereonet. All angles in degrees.
func Cone(plunge, bearing, angle float64, segments int) (lon, lat []float64) {
	lon = vec.Linspace(-180, 180, segments)
	lat = make([]float64, segments)
	for i := range lat {
		lat[i] = 90 - angle
	}
	lon, lat = rotate(lon, lat, -plunge, axisY)
	return rotate(vec.Map(degrees, lon), vec.Map(degrees, lat), bearing, axisX)
}

// PlungeBearingToPole converts plunges and bearings (degrees) to the
// strikes and dips of the planes whose poles are parallel to the given
// lines.
func PlungeBearingToPole(plunge, bearing []float64) (strike, dip []float64) {
	if len(plunge) != len(bearing) {
		panic("len(plunge) != len(bearing)")
	}
	strike = make([]float64, len(plunge))
	dip = make([]float64, len(plunge))
	for i := range plunge {
		s := bearing[i] + 90
		if s >= 360 {
			s -= 360
		}
		strike[i], dip[i] = s, 90-plunge[i]
	}
	return strike, dip
}

// PoleToPlungeBearing converts the strikes and dips of planes
// (degrees) to the plunges and bearings of their poles.
func PoleToPlungeBearing(strike, dip []float64) (plunge, bearing []float64) {
	if len(strike) != len(dip) {
		panic("len(strike) != len(dip)")
	}
	plunge = make([]float64, len(strike))
	bearing = make([]float64, len(strike))
	for i := range strike {
		b := strike[i] - 90
		if b < 0 {
			b += 360
		}
		plunge[i], bearing[i] = 90-dip[i], b
	}
	return plunge, bearing
}

// GeographicToPlungeBearing converts stereonet longitudes and
// latitudes (radians) into plunges and bearings in degrees. Points on
// the upper hemisphere fold to the opposite end of the line, so the
// returned plunge is always downward.
func GeographicToPlungeBearing(lon, lat []float64) (plunge, bearing []float64) {
	plunge = make([]float64, len(lon))
	bearing = make([]float64, len(lon))
	for i := range lon {
		x, y, z := sphToCart(lon[i], lat[i])
		// The bearing lies in the y-z plane; the plunge is the
		// angle between the vector and that plane.
		b := 90 - degrees(math.Atan2(z, y))
		r := math.Sqrt(x*x + y*y + z*z)
		if r == 0 {
			r = 1e-15
		}
		p := degrees(math.Asin(x / r))
		if b < 0 {
			b += 360
		}
		if p < 0 {
			p = -p
			b -= 180
			if b < 0 {
				b += 360
			}
		}
		plunge[i], bearing[i] = p, b
	}
	return plunge, bearing
}

// GeographicToPole converts stereonet longitudes and latitudes
// (radians) into the strikes and dips (degrees) of the planes whose
// poles lie at the given points.
func GeographicToPole(lon, lat []float64) (strike, dip []float64) {
	plunge, bearing := GeographicToPlungeBearing(lon, lat)
	strike = make([]float64, len(lon))
	dip = make([]float64, len(lon))
	for i := range plunge {
		s := bearing[i] + 90
		if s >= 360 {
			s -= 360
		}
		strike[i], dip[i] = s, 90-plunge[i]
	}
	return strike, dip
}

// PlaneIntersection returns the plunge and bearing (degrees) of the
// line of intersection of each pair of planes, given as strikes and
// dips in degrees.
func PlaneIntersection(strike1, dip1, strike2, dip2 []float64) (plunge, bearing []float64) {
	x1, y1, z1 := SphToCart(Pole(strike1, dip1))
	x2, y2, z2 := SphToCart(Pole(strike2, dip2))
	lon := make([]float64, len(x1))
	lat := make([]float64, len(x1))
	for i := range x1 {
		cx, cy, cz := cross(x1[i], y1[i], z1[i], x2[i], y2[i], z2[i])
		lon[i], lat[i] = cartToSph(cx, cy, cz)
	}
	return GeographicToPlungeBearing(lon, lat)
}

// ProjectOntoPlane projects each linear feature, given as plunge and
// bearing, onto the surface of the plane given by strike and dip, and
// returns its rake angle along that plane. Rakes are measured from the
// strike direction and always fall in [-90, 90]; a negative rake is
// the opposite end of the strike. All in degrees.
func ProjectOntoPlane(strike, dip, plunge, bearing []float64) []float64 {
	nx, ny, nz := SphToCart(Pole(strike, dip))
	fx, fy, fz := SphToCart(Line(plunge, bearing))
	sx, sy, sz := SphToCart(Line(make([]float64, len(strike)), strike))
	rakes := make([]float64, len(strike))
	for i := range strike {
		// Remove the out-of-plane component with a double cross
		// product.
		px, py, pz := cross(nx[i], ny[i], nz[i], fx[i], fy[i], fz[i])
		ox, oy, oz := cross(px, py, pz, nx[i], ny[i], nz[i])
		norm := math.Sqrt(ox*ox + oy*oy + oz*oz)
		ox, oy, oz = ox/norm, oy/norm, oz/norm

		// The rake is the angle between the projected feature and
		// the strike direction.
		dot := ox*sx[i] + oy*sy[i] + oz*sz[i]
		if dot > 1 {
			dot = 1
		} else if dot < -1 {
			dot = -1
		}
		rake := degrees(math.Acos(dot))
		if rake > 90 {
			rake -= 180
		} else if rake < -90 {
			rake += 180
		}
		rakes[i] = rake
	}
	return rakes
}

// AzimuthToRake projects the azimuth of a linear feature onto the
// plane given by strike and dip, returning its rake angle. All in
// degrees.
func AzimuthToRake(strike, dip, azimuth float64) float64 {
	plunge, bearing := PlaneIntersection(
		[]float64{strike}, []float64{dip}, []float64{azimuth}, []float64{90})
	return ProjectOntoPlane([]float64{strike}, []float64{dip}, plunge, bearing)[0]
}

// XYZToStereonet converts world cartesian coordinates (x east, y
// north, z up) into lower-hemisphere stereonet coordinates in radians.
func XYZToStereonet(x, y, z []float64) (lon, lat []float64) {
	lon = make([]float64, len(x))
	lat = make([]float64, len(x))
	for i := range x {
		lon[i], lat[i] = cartToSph(-z[i], x[i], y[i])
	}
	return lon, lat
}

// StereonetToXYZ is the inverse of XYZToStereonet.
func StereonetToXYZ(lon, lat []float64) (x, y, z []float64) {
	cx, cy, cz := SphToCart(lon, lat)
	for i := range cx {
		cx[i], cy[i], cz[i] = cy[i], cz[i], -cx[i]
	}
	return cx, cy, cz
}

// VectorToPlungeBearing converts vectors in world coordinates into
// plunges and bearings in degrees.
func VectorToPlungeBearing(x, y, z []float64) (plunge, bearing []float64) {
	return GeographicToPlungeBearing(XYZToStereonet(x, y, z))
}

// VectorToPole treats each world-coordinate vector as the normal to a
// plane and returns that plane's strike and dip in degrees.
func VectorToPole(x, y, z []float64) (strike, dip []float64) {
	return GeographicToPole(XYZToStereonet(x, y, z))
}

func cross(x1, y1, z1, x2, y2, z2 float64) (x, y, z float64) {
	return y1*z2 - z1*y2, z1*x2 - x1*z2, x1*y2 - y1*x2
}
