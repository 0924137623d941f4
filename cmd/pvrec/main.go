// Command pvrec is the CLI adapter for the PV recognizer core (spec §6).
// It walks one input file (or every .txt file in a directory), drives the
// association engine over each, and writes one output file per promoted
// tracklet.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/pvrec/internal/config"
	"github.com/banshee-data/pvrec/internal/fsutil"
	"github.com/banshee-data/pvrec/internal/pvrec"
	"github.com/banshee-data/pvrec/internal/pvrecio"
)

// Exit codes per spec §6.
const (
	exitOK                = 0
	exitBadArgCount       = -1
	exitUnknownFlag       = -2
	exitExtraPositional   = -3
	exitNotAFile          = -4
	exitNotADirectory     = -5
	exitCannotCreateOutDir = -6
)

func main() {
	os.Exit(run(os.Args[1:], fsutil.OSFileSystem{}))
}

// run implements the CLI and returns the process exit code, kept separate
// from main so tests can drive it without an os.Exit call. fsys is used
// for the pre-flight -F/-D path-type check and to create the output
// directory; pvrecio owns the rest of the file I/O.
func run(args []string, fsys fsutil.FileSystem) int {
	mode := pvrecio.ModeFile
	beltFilter := false
	rest := args

	for len(rest) > 0 && len(rest[0]) > 0 && rest[0][0] == '-' {
		switch rest[0] {
		case "-F":
			mode = pvrecio.ModeFile
		case "-D":
			mode = pvrecio.ModeDir
		case "-belt-filter":
			beltFilter = true
		default:
			fmt.Fprintf(os.Stderr, "pvrec: unknown flag %q\n", rest[0])
			return exitUnknownFlag
		}
		rest = rest[1:]
	}

	if len(rest) < 2 {
		printUsage()
		return exitBadArgCount
	}
	if len(rest) > 2 {
		fmt.Fprintf(os.Stderr, "pvrec: unexpected extra argument %q\n", rest[2])
		return exitExtraPositional
	}

	inputPath, outputDir := rest[0], rest[1]

	info, err := fsys.Stat(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pvrec: cannot stat %s: %v\n", inputPath, err)
		if mode == pvrecio.ModeDir {
			return exitNotADirectory
		}
		return exitNotAFile
	}
	if mode == pvrecio.ModeFile && info.IsDir() {
		fmt.Fprintf(os.Stderr, "pvrec: %s is a directory, -F expects a file\n", inputPath)
		return exitNotAFile
	}
	if mode == pvrecio.ModeDir && !info.IsDir() {
		fmt.Fprintf(os.Stderr, "pvrec: %s is not a directory\n", inputPath)
		return exitNotADirectory
	}

	if err := fsys.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "pvrec: cannot create output directory %s: %v\n", outputDir, err)
		return exitCannotCreateOutDir
	}

	files, err := pvrecio.ResolveInputs(mode, inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pvrec: %v\n", err)
		if mode == pvrecio.ModeDir {
			return exitNotADirectory
		}
		return exitNotAFile
	}

	params := pvrec.DefaultParams()
	if cfg, err := config.LoadTuningConfig(config.DefaultConfigPath); err == nil {
		if p, err := cfg.ToParams(); err == nil {
			params = p
		}
	}

	conv := pvrecio.NewConverter()
	seq := pvrecio.NewSeqCounters()
	total := 0

	for _, f := range files {
		batches, err := pvrecio.ProcessFile(f, params, conv)
		if err != nil {
			log.Printf("pvrec: %v", err)
			continue
		}
		found := 0
		for _, b := range batches {
			for _, obj := range b.Objects {
				if beltFilter && inGeoBelt(obj) {
					continue
				}
				if _, err := pvrecio.WriteObject(outputDir, obj, seq, pvrecio.DefaultFaintMagChecker); err != nil {
					log.Printf("pvrec: %v", err)
					continue
				}
				found++
			}
		}
		log.Printf("pvrec: %s: %d tracklet(s)", f, found)
		total += found
	}

	fmt.Printf("pvrec: %d tracklet(s) written to %s\n", total, outputDir)
	return exitOK
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: pvrec [-F|-D] [-belt-filter] <input-path> <output-dir>")
}

// inGeoBelt reports whether every point of obj falls in the geosynchronous
// declination belt (-16, 0) degrees. Disabled by default; pass
// -belt-filter to drop these objects at write time, never inside the
// engine itself.
func inGeoBelt(obj pvrec.Object) bool {
	for _, p := range obj.Points {
		if !(p.Dec > -16.0 && p.Dec < 0.0) {
			return false
		}
	}
	return len(obj.Points) > 0
}
