// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereonet

import "fmt"

// Measurement selects how raw measurement columns are interpreted by
// the analysis and contouring layers.
type Measurement int

const (
	// Poles interprets two columns as the strikes and dips of
	// planes in degrees and uses the poles to those planes.
	Poles Measurement = iota

	// Lines interprets two columns as the plunges and bearings of
	// linear features in degrees.
	Lines

	// Rakes interprets three columns as strikes, dips, and rake
	// angles along the planes, in degrees.
	Rakes

	// Radians interprets two columns as raw stereonet longitudes
	// and latitudes in radians.
	Radians
)

var measurementNames = []string{"poles", "lines", "rakes", "radians"}

func (m Measurement) String() string {
	if m < 0 || int(m) >= len(measurementNames) {
		return fmt.Sprintf("Measurement(%d)", int(m))
	}
	return measurementNames[m]
}

// ParseMeasurement maps the conventional keyword names ("poles",
// "lines", "rakes", "radians") to a Measurement.
func ParseMeasurement(s string) (Measurement, error) {
	for i, name := range measurementNames {
		if s == name {
			return Measurement(i), nil
		}
	}
	return 0, fmt.Errorf("unknown measurement kind %q", s)
}

// Columns returns the number of measurement columns m consumes.
func (m Measurement) Columns() int {
	if m == Rakes {
		return 3
	}
	return 2
}

// LonLat converts raw measurement columns into stereonet coordinates.
// Poles, Lines, and Radians take two columns; Rakes takes three. The
// columns must have equal lengths.
func (m Measurement) LonLat(cols ...[]float64) (lon, lat []float64, err error) {
	if len(cols) != m.Columns() {
		return nil, nil, fmt.Errorf("%s: want %d columns, got %d", m, m.Columns(), len(cols))
	}
	for _, col := range cols[1:] {
		if len(col) != len(cols[0]) {
			return nil, nil, fmt.Errorf("%s: mismatched column lengths %d and %d", m, len(cols[0]), len(col))
		}
	}
	switch m {
	case Poles:
		lon, lat = Pole(cols[0], cols[1])
	case Lines:
		lon, lat = Line(cols[0], cols[1])
	case Rakes:
		lon, lat = Rake(cols[0], cols[1], cols[2])
	case Radians:
		lon, lat = cols[0], cols[1]
	default:
		return nil, nil, fmt.Errorf("unknown measurement kind %d", int(m))
	}
	return lon, lat, nil
}
