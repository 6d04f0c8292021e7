// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereonet

import "testing"

func TestParseMeasurement(t *testing.T) {
	for want := Poles; want <= Radians; want++ {
		got, err := ParseMeasurement(want.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ParseMeasurement(%q) = %v", want.String(), got)
		}
	}
	if _, err := ParseMeasurement("planes"); err == nil {
		t.Errorf("ParseMeasurement(\"planes\") did not fail")
	}
}

func TestMeasurementColumns(t *testing.T) {
	for _, m := range []Measurement{Poles, Lines, Radians} {
		if got := m.Columns(); got != 2 {
			t.Errorf("%v.Columns() = %d, want 2", m, got)
		}
	}
	if got := Rakes.Columns(); got != 3 {
		t.Errorf("Rakes.Columns() = %d, want 3", got)
	}
}

func TestMeasurementLonLat(t *testing.T) {
	strike := []float64{315, 120}
	dip := []float64{40, 70}

	lon, lat, err := Poles.LonLat(strike, dip)
	if err != nil {
		t.Fatal(err)
	}
	wlon, wlat := Pole(strike, dip)
	for i := range lon {
		if lon[i] != wlon[i] || lat[i] != wlat[i] {
			t.Errorf("Poles.LonLat[%d] = (%v, %v), want (%v, %v)",
				i, lon[i], lat[i], wlon[i], wlat[i])
		}
	}

	lon, lat, err = Radians.LonLat([]float64{0.1}, []float64{0.2})
	if err != nil {
		t.Fatal(err)
	}
	if lon[0] != 0.1 || lat[0] != 0.2 {
		t.Errorf("Radians.LonLat = (%v, %v), want (0.1, 0.2)", lon[0], lat[0])
	}

	if _, _, err := Rakes.LonLat(strike, dip); err == nil {
		t.Errorf("Rakes.LonLat with 2 columns did not fail")
	}
	if _, _, err := Lines.LonLat(strike, dip[:1]); err == nil {
		t.Errorf("LonLat with mismatched column lengths did not fail")
	}
}
