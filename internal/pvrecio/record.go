package pvrecio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/banshee-data/pvrec/internal/pvrec"
)

// Record is one parsed input line, still carrying its camera id (the
// engine is per-camera but the input stream interleaves cameras, so the
// adapter splits on camera-id change to decide batch boundaries) and
// whether the writer should render the magnitude as 99.99 (§6).
type Record struct {
	CamID     int
	Detection pvrec.Detection
	FaintMag  bool
}

// ParseLine parses one comma-separated detection line:
//
//	YYYY-MM-DD HH:MM:SS, frame_no, x, y, ra, dec, mag, mag_err, microseconds, camera_id
//
// The header line is the caller's responsibility to skip; ParseLine has no
// concept of "first line of file". A malformed line returns an error; per
// §7 the caller is expected to skip it and continue.
func ParseLine(line string, conv Converter) (Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 10 {
		return Record{}, fmt.Errorf("pvrecio: expected 10 comma-separated fields, got %d", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	ts := fields[0]
	datePart, timePart, ok := strings.Cut(ts, " ")
	if !ok {
		return Record{}, fmt.Errorf("pvrecio: malformed timestamp %q", ts)
	}
	var year, month, day, hour, minute, second int
	if _, err := fmt.Sscanf(datePart, "%d-%d-%d", &year, &month, &day); err != nil {
		return Record{}, fmt.Errorf("pvrecio: malformed date %q: %w", datePart, err)
	}
	if _, err := fmt.Sscanf(timePart, "%d:%d:%d", &hour, &minute, &second); err != nil {
		return Record{}, fmt.Errorf("pvrecio: malformed time %q: %w", timePart, err)
	}

	frameNo, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("pvrecio: malformed frame number %q: %w", fields[1], err)
	}
	x, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Record{}, fmt.Errorf("pvrecio: malformed x %q: %w", fields[2], err)
	}
	y, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Record{}, fmt.Errorf("pvrecio: malformed y %q: %w", fields[3], err)
	}
	ra, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Record{}, fmt.Errorf("pvrecio: malformed ra %q: %w", fields[4], err)
	}
	dec, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return Record{}, fmt.Errorf("pvrecio: malformed dec %q: %w", fields[5], err)
	}
	mag, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return Record{}, fmt.Errorf("pvrecio: malformed mag %q: %w", fields[6], err)
	}
	// fields[7] is mag_err: carried in the input for downstream analysis
	// but unused by the recognizer itself.
	microseconds, err := strconv.Atoi(fields[8])
	if err != nil {
		return Record{}, fmt.Errorf("pvrecio: malformed microseconds %q: %w", fields[8], err)
	}
	camID, err := strconv.Atoi(fields[9])
	if err != nil {
		return Record{}, fmt.Errorf("pvrecio: malformed camera id %q: %w", fields[9], err)
	}

	mjd := conv.ToMJD(year, month, day, hour, minute, second, microseconds)
	return Record{
		CamID: camID,
		Detection: pvrec.Detection{
			FrameNo: frameNo,
			MJD:     mjd,
			X:       x,
			Y:       y,
			RA:      ra,
			Dec:     dec,
			Mag:     mag,
		},
		FaintMag: mag > 20.0,
	}, nil
}
