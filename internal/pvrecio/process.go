package pvrecio

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/pvrec/internal/pvrec"
)

// BatchResult is the promoted output of one (file, camera) batch, tagged
// with the camera id the engine reported it under.
type BatchResult struct {
	CamID   int
	Objects []pvrec.Object
}

// ProcessFile reads one input file (header line skipped, §6 record
// format), drives the engine one batch per contiguous run of a single
// camera id, and returns every batch's promoted objects. Malformed lines
// are logged and skipped (§7); they never abort the file.
func ProcessFile(path string, params pvrec.Params, conv Converter) ([]BatchResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pvrecio: open %s: %w", path, err)
	}
	defer f.Close()
	return ProcessReader(f, path, params, conv)
}

// ProcessReader is ProcessFile's testable core: it takes an already-open
// reader instead of a path. name is used only for log messages.
func ProcessReader(r io.Reader, name string, params pvrec.Params, conv Converter) ([]BatchResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	engine := pvrec.NewEngine(params)

	var results []BatchResult
	started := false
	curCam := 0
	lineNo := 0

	flush := func() {
		if !started {
			return
		}
		engine.EndBatch()
		camID, objs := engine.Objects()
		if len(objs) > 0 {
			results = append(results, BatchResult{CamID: camID, Objects: objs})
		}
	}

	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header line, §6
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		rec, err := ParseLine(line, conv)
		if err != nil {
			log.Printf("pvrecio: %s:%d: skipping malformed line: %v", name, lineNo, err)
			continue
		}
		if !started || rec.CamID != curCam {
			flush()
			engine.BeginBatch(rec.CamID)
			curCam = rec.CamID
			started = true
		}
		engine.PushDetection(rec.Detection)
	}
	if err := scanner.Err(); err != nil {
		return results, fmt.Errorf("pvrecio: scan %s: %w", name, err)
	}
	flush()
	return results, nil
}
