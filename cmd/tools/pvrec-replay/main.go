//go:build pcap
// +build pcap

// Command pvrec-replay replays a captured UDP telemetry session (one
// detection record per payload) through the recognizer offline, using the
// same PCAP decoding path the teacher gates behind -tags=pcap.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/pvrec/internal/config"
	"github.com/banshee-data/pvrec/internal/pvrec"
	"github.com/banshee-data/pvrec/internal/pvrecio"
	"github.com/banshee-data/pvrec/internal/pvrecnet"
)

func main() {
	udpPort := flag.Int("port", 9000, "UDP port the captured session targeted")
	outDir := flag.String("out", "pvrec-replay-out", "directory to write promoted tracklet files")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pvrec-replay [-port N] [-out dir] <capture.pcap>")
		os.Exit(1)
	}
	pcapFile := flag.Arg(0)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("pvrec-replay: create %s: %v", *outDir, err)
	}

	params := pvrec.DefaultParams()
	if cfg, err := config.LoadTuningConfig(config.DefaultConfigPath); err == nil {
		if p, err := cfg.ToParams(); err == nil {
			params = p
		}
	}
	conv := pvrecio.NewConverter()

	batches, err := pvrecnet.ReplayPCAPFile(context.Background(), pcapFile, *udpPort, params, conv)
	if err != nil {
		log.Fatalf("pvrec-replay: %v", err)
	}

	seq := pvrecio.NewSeqCounters()
	written := 0
	for _, b := range batches {
		for _, obj := range b.Objects {
			path, err := pvrecio.WriteObject(*outDir, obj, seq, pvrecio.DefaultFaintMagChecker)
			if err != nil {
				log.Printf("pvrec-replay: write object: %v", err)
				continue
			}
			written++
			fmt.Printf("pvrec-replay: wrote %s\n", path)
		}
	}
	fmt.Printf("pvrec-replay: replayed %d batches, wrote %d tracklets\n", len(batches), written)
}
