// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"math"
	"testing"

	"github.com/strucgeo/stereostat/stereonet"
)

func close(a, b float64) bool {
	return math.Abs(a-b) < 1e-7
}

// singlePoint contours one measurement at the stereonet center.
func singlePoint(t *testing.T, method Method, size int) *Grid {
	t.Helper()
	g, err := DensityGrid(Config{
		Measurement: stereonet.Radians,
		Method:      method,
		Rows:        size,
		Cols:        size,
	}, []float64{0}, []float64{0})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGridShape(t *testing.T) {
	g := singlePoint(t, Kamb, 0)
	if len(g.Density) != 100 || len(g.Density[0]) != 100 {
		t.Fatalf("default grid is %dx%d, want 100x100", len(g.Density), len(g.Density[0]))
	}

	g, err := DensityGrid(Config{
		Measurement: stereonet.Radians,
		Rows:        7,
		Cols:        5,
	}, []float64{0}, []float64{0})
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Density) != 7 || len(g.Density[0]) != 5 {
		t.Fatalf("grid is %dx%d, want 7x5", len(g.Density), len(g.Density[0]))
	}
	if !close(g.Lon[0][0], -math.Pi/2) || !close(g.Lon[0][4], math.Pi/2) {
		t.Errorf("longitude spans [%v, %v], want [-pi/2, pi/2]", g.Lon[0][0], g.Lon[0][4])
	}
	if !close(g.Lat[0][0], -math.Pi/2) || !close(g.Lat[6][0], math.Pi/2) {
		t.Errorf("latitude spans [%v, %v], want [-pi/2, pi/2]", g.Lat[0][0], g.Lat[6][0])
	}
}

func TestKambSinglePoint(t *testing.T) {
	// One point at sigma 3: the counting circle's critical cosine
	// distance is 0.1 and the normalization is sqrt(0.1*0.9), so
	// stations inside the circle read (1-0.5)/0.3 and stations
	// outside clamp to zero. On a 10x10 grid only the outermost
	// rows and columns fall outside.
	g := singlePoint(t, Kamb, 10)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			want := 5.0 / 3
			if r == 0 || r == 9 || c == 0 || c == 9 {
				want = 0
			}
			if !close(g.Density[r][c], want) {
				t.Errorf("density[%d][%d] = %v, want %v", r, c, g.Density[r][c], want)
			}
		}
	}
}

func TestExponentialKambSinglePoint(t *testing.T) {
	g := singlePoint(t, ExponentialKamb, 10)
	// Stations at lon, lat (±10, ±10) and (±30, ±30) degrees.
	for _, rc := range [][2]int{{4, 4}, {4, 5}, {5, 4}, {5, 5}} {
		if got := g.Density[rc[0]][rc[1]]; !close(got, 2.901250224) {
			t.Errorf("density%v = %v, want 2.901250224", rc, got)
		}
	}
	for _, rc := range [][2]int{{3, 3}, {3, 6}, {6, 3}, {6, 6}} {
		if got := g.Density[rc[0]][rc[1]]; !close(got, 0.491689472) {
			t.Errorf("density%v = %v, want 0.491689472", rc, got)
		}
	}
	for _, rc := range [][2]int{{3, 4}, {4, 3}, {5, 6}, {6, 5}} {
		if got := g.Density[rc[0]][rc[1]]; math.Abs(got-1.4740896) > 1e-6 {
			t.Errorf("density%v = %v, want 1.4740896", rc, got)
		}
	}
	// The exponential estimate is zero only where the count falls
	// below the continuity correction, and those cells are bumped
	// to the smallest positive float.
	if got := g.Density[4][0]; got != math.SmallestNonzeroFloat64 {
		t.Errorf("far-field density = %v, want SmallestNonzeroFloat64", got)
	}
}

func TestLinearKambSinglePoint(t *testing.T) {
	g := singlePoint(t, LinearKamb, 10)
	if got := g.Density[4][4]; !close(got, 4.776639336) {
		t.Errorf("near-station density = %v, want 4.776639336", got)
	}
	if got := g.Density[3][3]; !close(got, 3.148148148) {
		t.Errorf("mid-station density = %v, want 3.148148148", got)
	}
	if got := g.Density[2][2]; math.Abs(got-0.6531549) > 1e-6 {
		t.Errorf("outer-station density = %v, want 0.6531549", got)
	}
	if got := g.Density[1][4]; math.Abs(got-0.08758584) > 1e-6 {
		t.Errorf("edge-station density = %v, want 0.08758584", got)
	}
	if got := g.Density[4][0]; got != math.SmallestNonzeroFloat64 {
		t.Errorf("far-field density = %v, want SmallestNonzeroFloat64", got)
	}
}

func TestSchmidtSinglePoint(t *testing.T) {
	// A 5x5 grid has a station exactly at the measurement. The 1%
	// circle holds the whole count there, giving 1 point per 1%
	// area times 100.
	g := singlePoint(t, Schmidt, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := 0.0
			if r == 2 && c == 2 {
				want = 100
			}
			if !close(g.Density[r][c], want) {
				t.Errorf("density[%d][%d] = %v, want %v", r, c, g.Density[r][c], want)
			}
		}
	}
}

func TestFisherSinglePoint(t *testing.T) {
	g := singlePoint(t, Fisher, 5)
	// The tabulated Fisher curve starts at 0.9945 at the center and
	// decays to zero well before 45 degrees out.
	if got := g.Density[2][2]; !close(got, 99.45) {
		t.Errorf("center density = %v, want 99.45", got)
	}
	if g.Density[2][2] <= g.Density[2][1] {
		t.Errorf("density does not decay away from the point: %v vs %v",
			g.Density[2][2], g.Density[2][1])
	}
	if got := g.Density[2][0]; got != math.SmallestNonzeroFloat64 {
		t.Errorf("far-field density = %v, want SmallestNonzeroFloat64", got)
	}
}

func TestDensityMethods(t *testing.T) {
	// Every method must peak near the data and integrate sensibly:
	// finite, non-negative everywhere.
	strikes := []float64{140, 142, 138, 141, 139, 140}
	dips := []float64{40, 41, 39, 42, 38, 40}
	for m := ExponentialKamb; m <= Fisher; m++ {
		g, err := DensityGrid(Config{Method: m, Rows: 30, Cols: 30}, strikes, dips)
		if err != nil {
			t.Fatal(err)
		}
		max := 0.0
		for _, row := range g.Density {
			for _, d := range row {
				if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
					t.Fatalf("%v: bad density %v", m, d)
				}
				if d > max {
					max = d
				}
			}
		}
		if max == 0 {
			t.Errorf("%v: grid is entirely zero", m)
		}
	}
}

func TestWeights(t *testing.T) {
	strikes := []float64{140, 20, 255}
	dips := []float64{40, 60, 10}

	base, err := DensityGrid(Config{Rows: 20, Cols: 20}, strikes, dips)
	if err != nil {
		t.Fatal(err)
	}
	// Uniform weights are normalized away regardless of magnitude.
	weighted, err := DensityGrid(Config{
		Rows: 20, Cols: 20,
		Weights: []float64{7, 7, 7},
	}, strikes, dips)
	if err != nil {
		t.Fatal(err)
	}
	for r := range base.Density {
		for c := range base.Density[r] {
			if !close(base.Density[r][c], weighted.Density[r][c]) {
				t.Fatalf("uniform weights changed density[%d][%d]: %v vs %v",
					r, c, base.Density[r][c], weighted.Density[r][c])
			}
		}
	}

	if _, err := DensityGrid(Config{Weights: []float64{1, 2}}, strikes, dips); err == nil {
		t.Errorf("mismatched weight count did not fail")
	}
	if _, err := DensityGrid(Config{Weights: []float64{0, 0, 0}}, strikes, dips); err == nil {
		t.Errorf("all-zero weights did not fail")
	}
}

func TestWeightedShift(t *testing.T) {
	// Weighting one of two points heavily must pull the density
	// peak to it.
	lon := []float64{-0.5, 0.5}
	lat := []float64{0, 0}
	g, err := DensityGrid(Config{
		Measurement: stereonet.Radians,
		Rows:        21, Cols: 21,
		Weights: []float64{10, 1},
	}, lon, lat)
	if err != nil {
		t.Fatal(err)
	}
	var peakLon float64
	max := -1.0
	for r := range g.Density {
		for c := range g.Density[r] {
			if g.Density[r][c] > max {
				max, peakLon = g.Density[r][c], g.Lon[r][c]
			}
		}
	}
	if peakLon >= 0 {
		t.Errorf("peak at lon %v, want on the heavy point's side", peakLon)
	}
}

func TestParseMethod(t *testing.T) {
	for want := ExponentialKamb; want <= Fisher; want++ {
		got, err := ParseMethod(want.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ParseMethod(%q) = %v", want.String(), got)
		}
	}
	if _, err := ParseMethod("gaussian"); err == nil {
		t.Errorf("ParseMethod(\"gaussian\") did not fail")
	}
}

func TestFisherTable(t *testing.T) {
	if got := fisherProb(0.3); got != fisherTable[0] {
		t.Errorf("fisherProb(0.3) = %v, want the first table entry", got)
	}
	if got := fisherProb(60); got != 0 {
		t.Errorf("fisherProb(60) = %v, want 0", got)
	}
	// Interpolation is monotone over the table's range.
	prev := math.Inf(1)
	for a := 1.0; a <= 45; a += 0.25 {
		p := fisherProb(a)
		if p > prev {
			t.Fatalf("fisherProb(%v) = %v rose above %v", a, p, prev)
		}
		prev = p
	}
}
