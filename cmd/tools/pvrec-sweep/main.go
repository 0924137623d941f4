// Command pvrec-sweep runs the recognizer over one input file under a
// grid of npt_min/dxy_max values and reports aggregate statistics
// (mean/stddev of tracklet length and promotion count) per combination,
// using gonum/stat the way the teacher's internal/db aggregates rollups.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/pvrec/internal/pvrec"
	"github.com/banshee-data/pvrec/internal/pvrecio"
)

// sweepPoint is one (npt_min, dxy_max) combination's result.
type sweepPoint struct {
	NptMin        int
	DxyMax        float64
	ObjectCount   int
	MeanLength    float64
	StdDevLength  float64
}

func main() {
	nptMins := flag.String("npt-min", "3,4,5,6", "comma-separated npt_min values to sweep")
	dxyMaxes := flag.String("dxy-max", "2,5,8", "comma-separated dxy_max values to sweep")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pvrec-sweep [-npt-min list] [-dxy-max list] <input-file>")
		os.Exit(1)
	}
	input := flag.Arg(0)

	nptValues, err := parseInts(*nptMins)
	if err != nil {
		log.Fatalf("pvrec-sweep: -npt-min: %v", err)
	}
	dxyValues, err := parseFloats(*dxyMaxes)
	if err != nil {
		log.Fatalf("pvrec-sweep: -dxy-max: %v", err)
	}

	conv := pvrecio.NewConverter()
	var results []sweepPoint

	for _, npt := range nptValues {
		for _, dxy := range dxyValues {
			params := pvrec.DefaultParams().WithNptMin(npt).WithDxyMax(dxy)
			if err := params.Validate(); err != nil {
				log.Printf("pvrec-sweep: skipping invalid combination npt_min=%d dxy_max=%g: %v", npt, dxy, err)
				continue
			}

			batches, err := pvrecio.ProcessFile(input, params, conv)
			if err != nil {
				log.Fatalf("pvrec-sweep: %v", err)
			}

			var lengths []float64
			for _, b := range batches {
				for _, obj := range b.Objects {
					lengths = append(lengths, float64(len(obj.Points)))
				}
			}

			point := sweepPoint{NptMin: npt, DxyMax: dxy, ObjectCount: len(lengths)}
			if len(lengths) > 0 {
				point.MeanLength = stat.Mean(lengths, nil)
				point.StdDevLength = stat.StdDev(lengths, nil)
			}
			results = append(results, point)
		}
	}

	fmt.Printf("%-8s %-8s %-8s %-10s %-10s\n", "npt_min", "dxy_max", "objects", "mean_len", "stddev_len")
	for _, r := range results {
		fmt.Printf("%-8d %-8g %-8d %-10.3f %-10.3f\n", r.NptMin, r.DxyMax, r.ObjectCount, r.MeanLength, r.StdDevLength)
	}
}

func parseInts(csv string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", tok, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(csv string) ([]float64, error) {
	var out []float64
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q: %w", tok, err)
		}
		out = append(out, v)
	}
	return out, nil
}
