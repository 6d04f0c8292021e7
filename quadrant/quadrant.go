// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quadrant parses field-notation orientation measurements:
// quadrant-form azimuths like "N30E" and strike/dip pairs with dip
// direction letters like "45NW".
package quadrant

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var cardinal = map[byte]float64{'N': 0, 'S': 180, 'E': 90, 'W': 270}

// circmean is the circular mean of two azimuths in degrees. The
// result may be negative (e.g. the mean of 270 and 0 is -45).
func circmean(a, b float64) float64 {
	sa, ca := math.Sincos(a * (math.Pi / 180))
	sb, cb := math.Sincos(b * (math.Pi / 180))
	return math.Atan2((sa+sb)/2, (ca+cb)/2) * (180 / math.Pi)
}

// letterAzimuth converts a cardinal letter combination such as "N",
// "NW", or "WNW" to an azimuth in degrees.
func letterAzimuth(letters string) (float64, error) {
	for i := 0; i < len(letters); i++ {
		if _, ok := cardinal[letters[i]]; !ok {
			return 0, fmt.Errorf("%q is not a compass direction", letters)
		}
	}
	azi := cardinal[letters[len(letters)-1]]
	start := len(letters) - 2
	if start > 1 {
		start = 1
	}
	for i := start; i >= 0; i-- {
		azi = circmean(azi, cardinal[letters[i]])
	}
	return azi, nil
}

// ParseAzimuth converts a quadrant measurement of the form "AxxB",
// where A and B are cardinal directions and xx is an angle measured
// between them, into an azimuth in degrees clockwise from north:
// "E30N" is 60, "W10S" is 260. Antiparallel direction pairs such as
// "N10S" are ambiguous and rejected.
func ParseAzimuth(s string) (float64, error) {
	if len(s) < 3 {
		return 0, fmt.Errorf("%q is not a valid azimuth", s)
	}
	up := strings.ToUpper(s)
	first, err := letterAzimuth(up[:1])
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid azimuth", s)
	}
	second, err := letterAzimuth(up[len(up)-1:])
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid azimuth", s)
	}
	angle, err := strconv.ParseFloat(up[1:len(up)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid azimuth", s)
	}

	// The cross product of the two direction vectors gives the
	// rotation sense from the first toward the second. Near zero
	// the directions are parallel or antiparallel and the
	// measurement is ambiguous.
	direc := math.Sin((second - first) * (math.Pi / 180))
	if math.Abs(direc) < 0.9 {
		return 0, fmt.Errorf("%q is not a valid azimuth", s)
	}
	azi := first + direc*angle
	if azi < 0 {
		azi += 360
	} else if azi > 360 {
		azi -= 360
	}
	return azi, nil
}

var dipLetters = regexp.MustCompile(`[NSEWnsew]+$`)

// ParseStrikeDip parses a strike and dip pair in field notation and
// returns the equivalent right-hand-rule strike and dip in degrees.
// The strike may be a plain azimuth ("210") or quadrant form ("N30E");
// the dip may carry a direction letter ("45NW"). When the indicated
// dip direction disagrees with the right-hand rule, the opposite end
// of the strike is returned: "N30E"/"45NW" parses as 210/45.
func ParseStrikeDip(strike, dip string) (float64, float64, error) {
	var azi float64
	var err error
	if strike != "" && unicode.IsLetter(rune(strike[0])) {
		azi, err = ParseAzimuth(strike)
	} else {
		azi, err = strconv.ParseFloat(strike, 64)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("bad strike %q: %v", strike, err)
	}

	letters := dipLetters.FindString(dip)
	d, err := strconv.ParseFloat(dip[:len(dip)-len(letters)], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad dip %q: %v", dip, err)
	}

	if letters != "" {
		direc, err := letterAzimuth(strings.ToUpper(letters))
		if err != nil {
			return 0, 0, fmt.Errorf("bad dip %q: %v", dip, err)
		}
		// The dip direction must be 90 degrees clockwise of the
		// strike; if it points the other way, flip the strike.
		expected := azi + 90
		if math.Cos((direc - expected) * (math.Pi / 180)) < 0 {
			azi += 180
		}
	}
	if azi >= 360 {
		azi -= 360
	}
	return azi, d, nil
}
