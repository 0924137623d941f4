package pvrecio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/pvrec/internal/pvrec"
)

// SeqCounters assigns the per-camera NNNN sequence number in the output
// filename YYYYMMDD_CCC_NNNN.txt. It is owned by the caller (typically one
// per run) because the sequence resets only when the caller chooses to
// construct a new one, not per batch.
type SeqCounters struct {
	next map[int]int
}

// NewSeqCounters returns a SeqCounters with every camera starting at 1.
func NewSeqCounters() *SeqCounters {
	return &SeqCounters{next: make(map[int]int)}
}

func (s *SeqCounters) nextFor(camID int) int {
	n := s.next[camID] + 1
	s.next[camID] = n
	return n
}

// FaintMagChecker reports whether a point's magnitude should render as
// 99.99 in the output file. The CLI and the replay tool pass
// DefaultFaintMagChecker, which thresholds the raw magnitude at the same
// value the parser uses for Record.FaintMag.
type FaintMagChecker func(mag float64) bool

// DefaultFaintMagChecker flags magnitudes greater than 20.0, matching §6.
func DefaultFaintMagChecker(mag float64) bool { return mag > 20.0 }

// WriteObject writes one promoted object to outDir, named
// YYYYMMDD_CCC_NNNN.txt per §6, and returns the path written. The date
// component comes from the MJD of the object's first detection.
func WriteObject(outDir string, obj pvrec.Object, seq *SeqCounters, faint FaintMagChecker) (string, error) {
	if len(obj.Points) == 0 {
		return "", fmt.Errorf("pvrecio: cannot write an object with zero points")
	}
	if faint == nil {
		faint = DefaultFaintMagChecker
	}

	year, month, day, _ := Mjd2Cal(obj.Points[0].MJD)
	n := seq.nextFor(obj.CamID)
	name := fmt.Sprintf("%04d%02d%02d_%03d_%04d.txt", year, month, day, obj.CamID, n)
	path := filepath.Join(outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("pvrecio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range obj.Points {
		y, mo, d, frac := Mjd2Cal(p.MJD)
		totalSeconds := frac * 86400.0
		hour := int(totalSeconds / 3600)
		minute := int(totalSeconds/60) % 60
		secFloat := totalSeconds - float64(hour*3600) - float64(minute*60)

		mag := p.Mag
		if faint(p.Mag) {
			mag = 99.99
		}

		line := fmt.Sprintf("%04d %02d %02d %02d %02d %06.3f %4d  %8.5f  %8.5f  %5.2f\r\n",
			y, mo, d, hour, minute, secFloat, p.FrameNo, p.RA, p.Dec, mag)
		if _, err := w.WriteString(line); err != nil {
			return "", fmt.Errorf("pvrecio: write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("pvrecio: flush %s: %w", path, err)
	}
	return path, nil
}
