// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/gonum/floats"

	"github.com/strucgeo/stereostat/stereonet"
)

// ErrNotConverged is returned by KMeans.Cluster when the cluster
// centers are still moving after MaxIter iterations.
var ErrNotConverged = errors.New("kmeans centers did not converge")

// KMeans configures spherical k-means clustering of orientation
// measurements. The zero value clusters poles into two bidirectional
// clusters with the default tolerance and iteration cap.
type KMeans struct {
	// Num is the number of clusters to find. 0 means 2.
	Num int

	// Measurement selects how Cluster's columns are interpreted.
	Measurement stereonet.Measurement

	// Directed treats the measurements as directed vectors rather
	// than undirected axes. Most orientation data is axial, so the
	// zero value (bidirectional) is usually right.
	Directed bool

	// Tolerance is the angular movement in radians below which the
	// centers are considered converged. 0 means 1e-5.
	Tolerance float64

	// MaxIter caps the assign/re-estimate loop. 0 means 500.
	MaxIter int

	// Rand is the source used to draw the initial centers. nil
	// means the shared global source; pass a seeded source for
	// reproducible clustering.
	Rand *rand.Rand
}

// Cluster partitions the measurements into Num clusters and returns
// the cluster centers as (lon, lat) pairs in radians.
//
// Initial centers are drawn from the input points themselves, without
// a guarantee of distinctness. Each point is then assigned to the
// center nearest by angular distance, and each center is re-estimated
// as the largest eigenvector of its members' covariance: the mean
// axial orientation of the cluster. A naive cartesian mean would let
// bidirectional data cancel itself out.
func (k *KMeans) Cluster(cols ...[]float64) ([][2]float64, error) {
	num := k.Num
	if num == 0 {
		num = 2
	}
	tol := k.Tolerance
	if tol == 0 {
		tol = 1e-5
	}
	maxIter := k.MaxIter
	if maxIter == 0 {
		maxIter = 500
	}
	intn := rand.Intn
	if k.Rand != nil {
		intn = k.Rand.Intn
	}

	lon, lat, err := k.Measurement.LonLat(cols...)
	if err != nil {
		return nil, err
	}
	if len(lon) < num {
		return nil, fmt.Errorf("kmeans: %d measurements for %d clusters", len(lon), num)
	}
	bidirectional := !k.Directed

	cenLon := make([]float64, num)
	cenLat := make([]float64, num)
	for i := range cenLon {
		j := intn(len(lon))
		cenLon[i], cenLat[i] = lon[j], lat[j]
	}

	assign := make([]int, len(lon))
	bestDist := make([]float64, len(lon))
	for iter := 0; iter < maxIter; iter++ {
		// Assign every point to the nearest current center.
		for c := 0; c < num; c++ {
			dist := stereonet.AngularDistance(lon, lat, cenLon[c:c+1], cenLat[c:c+1], bidirectional)
			for i, d := range dist {
				if c == 0 || d < bestDist[i] {
					bestDist[i], assign[i] = d, c
				}
			}
		}

		// Re-estimate each center from its members.
		newLon := make([]float64, num)
		newLat := make([]float64, num)
		for c := 0; c < num; c++ {
			var mlon, mlat []float64
			for i, a := range assign {
				if a == c {
					mlon = append(mlon, lon[i])
					mlat = append(mlat, lat[i])
				}
			}
			if len(mlon) == 0 {
				// Initialization can leave a center with no
				// members. Leave it where it is.
				newLon[c], newLat[c] = cenLon[c], cenLat[c]
				continue
			}
			_, vecs := CovEig(mlon, mlat, bidirectional)
			v := vecs[2]
			vlon, vlat := stereonet.CartToSph([]float64{v[0]}, []float64{v[1]}, []float64{v[2]})
			newLon[c], newLat[c] = vlon[0], vlat[0]
		}

		done := floats.EqualApprox(newLon, cenLon, tol) && floats.EqualApprox(newLat, cenLat, tol)
		cenLon, cenLat = newLon, newLat
		if done {
			centers := make([][2]float64, num)
			for i := range centers {
				centers[i] = [2]float64{cenLon[i], cenLat[i]}
			}
			return centers, nil
		}
	}
	return nil, ErrNotConverged
}
