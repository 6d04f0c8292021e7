// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

// fisherTable is the Fisher probability versus counting angle curve
// used by the Fisher counting method. Entry i is the probability
// weight at a counting angle of i+1 degrees. The values are a smooth
// stand-in for the published empirical curve; treat them as an opaque
// constant, not a formula to rederive.
var fisherTable = [45]float64{
	0.9945, 0.9783, 0.9518, 0.9160, 0.8718,
	0.8208, 0.7642, 0.7039, 0.6412, 0.5777,
	0.5148, 0.4538, 0.3956, 0.3411, 0.2910,
	0.2454, 0.2048, 0.1690, 0.1380, 0.1114,
	0.0889, 0.0703, 0.0549, 0.0424, 0.0324,
	0.0245, 0.0183, 0.0135, 0.0099, 0.0072,
	0.0051, 0.0036, 0.0025, 0.0018, 0.0012,
	0.0008, 0.0005, 0.0004, 0.0002, 0.0002,
	0.0001, 0.0001, 0.0000, 0.0000, 0.0000,
}

// fisherProb linearly interpolates fisherTable at the given counting
// angle in degrees. Angles beyond the table contribute nothing.
func fisherProb(angle float64) float64 {
	if angle <= 1 {
		return fisherTable[0]
	}
	if angle >= 45 {
		return 0
	}
	i := int(angle) - 1
	frac := angle - float64(i+1)
	return fisherTable[i] + frac*(fisherTable[i+1]-fisherTable[i])
}
