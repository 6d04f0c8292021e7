// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Stereostat summarizes structural-geology orientation measurements.
//
// Usage:
//
//	stereostat [flags] [input file]
//
// The input is whitespace-separated columns, one measurement per
// line: strike and dip for -measurement poles (the default), plunge
// and bearing for lines, strike, dip, and rake angle for rakes, or
// raw longitude/latitude in radians. For poles and rakes, the strike
// and dip columns may use field quadrant notation ("N30E", "45NW").
// Blank lines and lines starting with # are skipped. With no input
// file, stereostat reads standard input.
//
// By default stereostat prints the three principal (eigenvector)
// directions of the data set. -fit girdle or -fit pole prints a
// best-fit plane instead, -fisher prints Fisher confidence
// statistics, -kmeans finds cluster centers, and -density prints a
// density grid as CSV on standard output.
package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/strucgeo/stereostat/analysis"
	"github.com/strucgeo/stereostat/contour"
	"github.com/strucgeo/stereostat/quadrant"
	"github.com/strucgeo/stereostat/stereonet"
)

var (
	flagMeasurement = flag.String("measurement", "poles", "interpret input as `kind`: poles, lines, rakes, or radians")
	flagFit         = flag.String("fit", "", "fit `what` to the data: girdle or pole")
	flagFisher      = flag.Float64("fisher", 0, "print Fisher statistics at `conf` percent confidence")
	flagKMeans      = flag.Int("kmeans", 0, "find `num` cluster centers")
	flagDensity     = flag.String("density", "", "print a density grid estimated with `method`: kamb, linear_kamb, square_kamb, exponential_kamb, schmidt, or fisher")
	flagSigma       = flag.Float64("sigma", 3, "counting circle size in `stddevs` for the Kamb methods")
	flagGridSize    = flag.Int("gridsize", 100, "density grid is `n` by n stations")
	flagSeed        = flag.Int64("seed", 0, "seed kmeans initialization for reproducible centers")
	flagJSON        = flag.Bool("json", false, "write results as JSON")
)

func main() {
	log.SetPrefix("stereostat: ")
	log.SetFlags(0)
	flag.Parse()

	meas, err := stereonet.ParseMeasurement(*flagMeasurement)
	if err != nil {
		log.Fatal(err)
	}

	r := os.Stdin
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	} else if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	cols, err := readMeasurements(r, meas)
	if err != nil {
		log.Fatal(err)
	}
	if len(cols[0]) == 0 {
		log.Fatal("no measurements")
	}

	if *flagDensity != "" {
		method, err := contour.ParseMethod(*flagDensity)
		if err != nil {
			log.Fatal(err)
		}
		grid, err := contour.DensityGrid(contour.Config{
			Measurement: meas,
			Method:      method,
			Sigma:       *flagSigma,
			Rows:        *flagGridSize,
			Cols:        *flagGridSize,
		}, cols...)
		if err != nil {
			log.Fatal(err)
		}
		if err := writeGrid(os.Stdout, grid); err != nil {
			log.Fatal(err)
		}
		return
	}

	var out output
	switch *flagFit {
	case "":
		eig, err := analysis.Eigenvectors(meas, true, cols...)
		if err != nil {
			log.Fatal(err)
		}
		out.Eigenvectors = eig[:]
	case "girdle", "pole":
		fit := analysis.FitGirdle
		if *flagFit == "pole" {
			fit = analysis.FitPole
		}
		strike, dip, err := fit(meas, true, cols...)
		if err != nil {
			log.Fatal(err)
		}
		out.Fit = &fitResult{*flagFit, strike, dip}
	default:
		log.Fatalf("unknown fit %q", *flagFit)
	}

	if *flagFisher != 0 {
		fr, err := analysis.FindFisherStats(meas, *flagFisher, cols...)
		if err != nil {
			log.Fatal(err)
		}
		out.Fisher = fr
	}

	if *flagKMeans != 0 {
		km := analysis.KMeans{Num: *flagKMeans, Measurement: meas}
		if *flagSeed != 0 {
			km.Rand = rand.New(rand.NewSource(*flagSeed))
		}
		centers, err := km.Cluster(cols...)
		if err != nil {
			log.Fatal(err)
		}
		for _, c := range centers {
			s, d := stereonet.GeographicToPole([]float64{c[0]}, []float64{c[1]})
			out.Centers = append(out.Centers, fitResult{"center", s[0], d[0]})
		}
	}

	if *flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "\t")
		if err := enc.Encode(out); err != nil {
			log.Fatal(err)
		}
		return
	}
	out.print(os.Stdout)
}

type fitResult struct {
	Kind   string
	Strike float64
	Dip    float64
}

type output struct {
	Eigenvectors []analysis.Eigenvector `json:",omitempty"`
	Fit          *fitResult             `json:",omitempty"`
	Fisher       *analysis.FisherResult `json:",omitempty"`
	Centers      []fitResult            `json:",omitempty"`
}

func (o *output) print(w io.Writer) {
	for _, e := range o.Eigenvectors {
		fmt.Fprintf(w, "eigenvector %02.0f/%03.0f value %.4f\n", e.Plunge, e.Bearing, e.Value)
	}
	if o.Fit != nil {
		fmt.Fprintf(w, "%s %03.0f/%02.0f\n", o.Fit.Kind, o.Fit.Strike, o.Fit.Dip)
	}
	if o.Fisher != nil {
		fmt.Fprintf(w, "fisher mean %02.1f/%03.1f r %.3f angle %.2f kappa %.2f\n",
			o.Fisher.Plunge, o.Fisher.Bearing, o.Fisher.R, o.Fisher.Angle, o.Fisher.Kappa)
	}
	for _, c := range o.Centers {
		fmt.Fprintf(w, "center %03.0f/%02.0f\n", c.Strike, c.Dip)
	}
}

// readMeasurements reads one measurement per line into parallel
// columns. For poles and rakes the strike and dip columns may be in
// quadrant notation.
func readMeasurements(r io.Reader, meas stereonet.Measurement) ([][]float64, error) {
	want := meas.Columns()
	cols := make([][]float64, want)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != want {
			return nil, fmt.Errorf("line %d: want %d fields, got %d", lineno, want, len(fields))
		}
		vals, err := parseFields(fields, meas)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineno, err)
		}
		for i, v := range vals {
			cols[i] = append(cols[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}

func parseFields(fields []string, meas stereonet.Measurement) ([]float64, error) {
	vals := make([]float64, len(fields))
	numeric := true
	for i, f := range fields[:2] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			numeric = false
			break
		}
		vals[i] = v
	}
	if !numeric {
		if meas != stereonet.Poles && meas != stereonet.Rakes {
			return nil, fmt.Errorf("bad value in %q", strings.Join(fields, " "))
		}
		s, d, err := quadrant.ParseStrikeDip(fields[0], fields[1])
		if err != nil {
			return nil, err
		}
		vals[0], vals[1] = s, d
	}
	for i, f := range fields[2:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		vals[2+i] = v
	}
	return vals, nil
}

// writeGrid writes the grid's density values as CSV, one row of
// stations per record, northernmost (highest latitude) row first.
func writeGrid(w io.Writer, g *contour.Grid) error {
	cw := csv.NewWriter(w)
	for r := len(g.Density) - 1; r >= 0; r-- {
		rec := make([]string, len(g.Density[r]))
		for c, v := range g.Density[r] {
			rec[c] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
