// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis fits planes and mean orientations to scatters of
// orientation measurements, computes their Fisher statistics, and
// clusters them with a spherical k-means.
package analysis

import (
	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"

	"github.com/strucgeo/stereostat/stereonet"
)

// CovEig returns the eigenvalues and eigenvectors of the covariance
// matrix of the measurements' cartesian coordinates. When
// bidirectional is true, each point's antipode is included before the
// covariance is built, which makes the statistics axial: a pole and
// its downward flip contribute identically.
//
// Eigenvalues are in ascending order and vecs[i] is the unit
// eigenvector paired with vals[i].
func CovEig(lon, lat []float64, bidirectional bool) (vals [3]float64, vecs [3][3]float64) {
	if bidirectional {
		alon, alat := stereonet.Antipode(lon, lat)
		lon = append(append([]float64(nil), lon...), alon...)
		lat = append(append([]float64(nil), lat...), alat...)
	}
	x, y, z := stereonet.SphToCart(lon, lat)
	n := float64(len(x))
	mx, my, mz := floats.Sum(x)/n, floats.Sum(y)/n, floats.Sum(z)/n

	var xx, xy, xz, yy, yz, zz float64
	for i := range x {
		dx, dy, dz := x[i]-mx, y[i]-my, z[i]-mz
		xx += dx * dx
		xy += dx * dy
		xz += dx * dz
		yy += dy * dy
		yz += dy * dz
		zz += dz * dz
	}
	// Sample covariance. The divisor only scales the eigenvalues;
	// a single point would make it zero, so guard it.
	div := n - 1
	if div <= 0 {
		div = 1
	}
	cov := mat64.NewSymDense(3, []float64{
		xx / div, xy / div, xz / div,
		xy / div, yy / div, yz / div,
		xz / div, yz / div, zz / div,
	})

	var es mat64.EigenSym
	if ok := es.Factorize(cov, true); !ok {
		panic("eigendecomposition of 3x3 covariance failed")
	}
	ev := es.Values(nil) // ascending
	var vd mat64.Dense
	vd.EigenvectorsSym(&es)
	for i := 0; i < 3; i++ {
		vals[i] = ev[i]
		for j := 0; j < 3; j++ {
			vecs[i][j] = vd.At(j, i)
		}
	}
	return vals, vecs
}

// FitGirdle fits a plane to a girdle of points and returns its strike
// and dip in degrees. The pole to the best-fit plane is the smallest
// eigenvector of the covariance matrix of the measurements, so this is
// the right fit for scattered, great-circle-aligned distributions,
// e.g. finding a fold axis from bedding measured on both limbs.
func FitGirdle(m stereonet.Measurement, bidirectional bool, cols ...[]float64) (strike, dip float64, err error) {
	return fitEigenvector(0, m, bidirectional, cols...)
}

// FitPole fits the pole to a plane to a "bullseye" of points and
// returns the plane's strike and dip in degrees. The pole is the
// largest eigenvector, so this is the right fit for clustered
// distributions, e.g. averaging repeated strike/dip measurements of
// one bed.
func FitPole(m stereonet.Measurement, bidirectional bool, cols ...[]float64) (strike, dip float64, err error) {
	return fitEigenvector(2, m, bidirectional, cols...)
}

func fitEigenvector(idx int, m stereonet.Measurement, bidirectional bool, cols ...[]float64) (strike, dip float64, err error) {
	lon, lat, err := m.LonLat(cols...)
	if err != nil {
		return 0, 0, err
	}
	_, vecs := CovEig(lon, lat, bidirectional)
	v := vecs[idx]
	vlon, vlat := stereonet.CartToSph([]float64{v[0]}, []float64{v[1]}, []float64{v[2]})
	s, d := stereonet.GeographicToPole(vlon, vlat)
	return s[0], d[0], nil
}

// Eigenvector is one principal direction of a measurement set.
type Eigenvector struct {
	// Plunge, Bearing is the direction of the eigenvector in
	// degrees.
	Plunge, Bearing float64

	// Value is the paired eigenvalue.
	Value float64
}

// Eigenvectors returns the three principal directions of the
// measurement set, sorted by descending eigenvalue (most clustered
// axis first). The relative magnitudes of the eigenvalues describe
// the fabric shape: one large value means a cluster, two large values
// a girdle, three similar values a uniform scatter.
func Eigenvectors(m stereonet.Measurement, bidirectional bool, cols ...[]float64) ([3]Eigenvector, error) {
	var out [3]Eigenvector
	lon, lat, err := m.LonLat(cols...)
	if err != nil {
		return out, err
	}
	vals, vecs := CovEig(lon, lat, bidirectional)
	for i := 0; i < 3; i++ {
		v := vecs[2-i]
		vlon, vlat := stereonet.CartToSph([]float64{v[0]}, []float64{v[1]}, []float64{v[2]})
		p, b := stereonet.GeographicToPlungeBearing(vlon, vlat)
		out[i] = Eigenvector{Plunge: p[0], Bearing: b[0], Value: vals[2-i]}
	}
	return out, nil
}

// FindMeanVector returns the plunge and bearing in degrees of the
// resultant vector of the measurements, along with its length r.
// Note that the resultant of axial data can cancel itself out; for
// poles and rakes, Eigenvectors is usually the better summary.
func FindMeanVector(m stereonet.Measurement, cols ...[]float64) (plunge, bearing, r float64, err error) {
	lon, lat, err := m.LonLat(cols...)
	if err != nil {
		return 0, 0, 0, err
	}
	mlon, mlat, r := stereonet.MeanVector(lon, lat)
	p, b := stereonet.GeographicToPlungeBearing([]float64{mlon}, []float64{mlat})
	return p[0], b[0], r, nil
}

// FisherResult is FindFisherStats' summary of a measurement set.
type FisherResult struct {
	// Plunge, Bearing is the mean direction in degrees.
	Plunge, Bearing float64

	// R is the resultant length of the mean vector, in [0, 1].
	R float64

	// Angle is the confidence cone's half-apical angle in degrees.
	Angle float64

	// Kappa is the Fisher dispersion parameter.
	Kappa float64
}

// FindFisherStats computes the Fisher distribution statistics of the
// measurements at the given confidence level in percent. Fewer than
// two measurements return stereonet.ErrSampleSize.
func FindFisherStats(m stereonet.Measurement, conf float64, cols ...[]float64) (*FisherResult, error) {
	lon, lat, err := m.LonLat(cols...)
	if err != nil {
		return nil, err
	}
	fs, err := stereonet.Fisher(lon, lat, conf)
	if err != nil {
		return nil, err
	}
	p, b := stereonet.GeographicToPlungeBearing([]float64{fs.Lon}, []float64{fs.Lat})
	return &FisherResult{
		Plunge:  p[0],
		Bearing: b[0],
		R:       fs.R,
		Angle:   fs.Angle,
		Kappa:   fs.Kappa,
	}, nil
}
