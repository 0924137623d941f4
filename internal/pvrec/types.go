package pvrec

// Detection is one centroid measurement of a source in one frame. It is
// immutable except for its reference counter, which tracks how many live
// candidates currently hold it in their confirmed or tentative lists.
//
// Detections are shared by pointer between the frame buffer and every
// candidate that admits them; the only copy made afterwards is the by-value
// snapshot a promoted Object takes of its points.
type Detection struct {
	FrameNo int
	MJD     float64
	X, Y    float64
	RA, Dec float64
	Mag     float64

	refs int
}

// NewDetection constructs a Detection with a zero reference count. Adapters
// outside this package are the only callers expected to use it directly;
// the engine only ever receives Detection values through PushDetection.
func NewDetection(frameNo int, mjd, x, y, ra, dec, mag float64) *Detection {
	return &Detection{
		FrameNo: frameNo,
		MJD:     mjd,
		X:       x,
		Y:       y,
		RA:      ra,
		Dec:     dec,
		Mag:     mag,
	}
}

// RefCount reports the number of live candidates currently holding this
// detection in either their confirmed or tentative list.
func (d *Detection) RefCount() int { return d.refs }

func (d *Detection) incRef() { d.refs++ }

func (d *Detection) decRef() {
	if d.refs > 0 {
		d.refs--
	}
}

// Frame accumulates every detection sharing one frame number, tagged with
// that frame's reference timestamp (the MJD of the first detection seen for
// it). The engine retains at most two Frames at a time: the currently open
// one and the immediately preceding one, the latter kept around purely to
// supply unreferenced detections to step 4 of the frame-close algorithm.
type Frame struct {
	FrameNo    int
	MJD        float64
	Detections []*Detection
}

// unreferenced returns the detections in the frame with a zero reference
// count, in original insertion order — the set used for seeding (U_F /
// U_prev in the frame-close algorithm).
func (f *Frame) unreferenced() []*Detection {
	if f == nil {
		return nil
	}
	var out []*Detection
	for _, d := range f.Detections {
		if d.refs == 0 {
			out = append(out, d)
		}
	}
	return out
}

// Object is an immutable promoted tracklet: the list of detections, in the
// order the candidate confirmed them, copied out of a candidate at the
// moment it met the promotion criteria. A point confirmed with a zero or
// negative time step is kept, so MJDs are not guaranteed strictly increasing. Nothing in the engine mutates an Object after it is
// appended to the output list.
type Object struct {
	ID     string
	CamID  int
	Points []Detection
}
