// Command pvrec-report replays one or more already-processed input files
// through the engine, indexes the promoted tracklets into a sqlite
// database (internal/pvrecdb), and renders a trajectory PNG per object
// plus an HTML per-camera dashboard (internal/pvrecreport).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/banshee-data/pvrec/internal/config"
	"github.com/banshee-data/pvrec/internal/pvrec"
	"github.com/banshee-data/pvrec/internal/pvrecdb"
	"github.com/banshee-data/pvrec/internal/pvrecio"
	"github.com/banshee-data/pvrec/internal/pvrecreport"
)

func main() {
	outDir := flag.String("out", "pvrec-report-out", "directory to write trajectory PNGs and the dashboard HTML")
	dbPath := flag.String("db", "pvrec-index.db", "path to the sqlite tracklet index")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: pvrec-report [-out dir] [-db path] <input-file>...")
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("pvrec-report: create %s: %v", *outDir, err)
	}

	db, err := pvrecdb.Open(*dbPath)
	if err != nil {
		log.Fatalf("pvrec-report: open index: %v", err)
	}
	defer db.Close()

	params := pvrec.DefaultParams()
	if cfg, err := config.LoadTuningConfig(config.DefaultConfigPath); err == nil {
		if p, err := cfg.ToParams(); err == nil {
			params = p
		}
	}
	conv := pvrecio.NewConverter()
	now := time.Now().Unix()

	for _, in := range inputs {
		batches, err := pvrecio.ProcessFile(in, params, conv)
		if err != nil {
			log.Printf("pvrec-report: %s: %v", in, err)
			continue
		}
		for _, b := range batches {
			for i, obj := range b.Objects {
				year, month, day, _ := pvrecio.Mjd2Cal(obj.Points[0].MJD)
				night := fmt.Sprintf("%04d%02d%02d", year, month, day)
				pngPath := filepath.Join(*outDir, fmt.Sprintf("%s_%03d_%04d.png", night, obj.CamID, i+1))
				if err := pvrecreport.PlotTrajectory(obj, pngPath); err != nil {
					log.Printf("pvrec-report: plot %s: %v", pngPath, err)
					continue
				}
				if err := db.IndexObject(obj, night, pngPath, now); err != nil {
					log.Printf("pvrec-report: index: %v", err)
				}
			}
		}
	}

	summaries, err := db.Summarize()
	if err != nil {
		log.Fatalf("pvrec-report: summarize: %v", err)
	}
	dashboardPath := filepath.Join(*outDir, "dashboard.html")
	if err := pvrecreport.RenderDashboard(summaries, dashboardPath); err != nil {
		log.Fatalf("pvrec-report: dashboard: %v", err)
	}
	fmt.Printf("pvrec-report: wrote dashboard to %s\n", dashboardPath)
}
