package pvrec

// Engine is the streaming association engine: one instance per batch (all
// detections from one camera in one session). It is not reentrant and
// holds no process-wide state — independent batches get independent
// Engines.
type Engine struct {
	params        Params
	pendingParams Params

	started bool
	camID   int

	prevFrame *Frame
	curFrame  *Frame

	candidates []*Candidate
	nextSeq    int64

	objects []Object
}

// NewEngine constructs an Engine with the given initial parameters.
func NewEngine(p Params) *Engine {
	return &Engine{params: p, pendingParams: p}
}

// SetParams stages a configuration change. Per §4.1 it has no effect on an
// in-flight batch; the staged value takes effect on the next BeginBatch.
func (e *Engine) SetParams(p Params) {
	e.pendingParams = p
}

// BeginBatch resets all internal state and activates any parameters staged
// by SetParams since the last batch.
func (e *Engine) BeginBatch(camID int) {
	e.params = e.pendingParams
	e.camID = camID
	e.started = true
	e.prevFrame = nil
	e.curFrame = nil
	e.candidates = nil
	e.nextSeq = 0
	e.objects = nil
}

// PushDetection accepts one detection. If its frame number differs from
// the currently open frame, the open frame is closed first. Calls before
// BeginBatch are ignored.
func (e *Engine) PushDetection(d Detection) {
	if !e.started {
		return
	}
	det := &Detection{
		FrameNo: d.FrameNo,
		MJD:     d.MJD,
		X:       d.X,
		Y:       d.Y,
		RA:      d.RA,
		Dec:     d.Dec,
		Mag:     d.Mag,
	}
	if e.curFrame == nil {
		e.curFrame = &Frame{FrameNo: det.FrameNo, MJD: det.MJD}
	} else if det.FrameNo != e.curFrame.FrameNo {
		e.closeFrame(e.curFrame)
		e.curFrame = &Frame{FrameNo: det.FrameNo, MJD: det.MJD}
	}
	e.curFrame.Detections = append(e.curFrame.Detections, det)
}

// EndBatch closes any open frame, promotes every remaining eligible
// candidate unconditionally, and clears the candidate population.
func (e *Engine) EndBatch() {
	if e.curFrame != nil {
		e.closeFrame(e.curFrame)
		e.curFrame = nil
	}
	for _, c := range e.candidates {
		if len(c.Confirmed) >= e.params.NptMin {
			e.objects = append(e.objects, c.toObject(e.camID))
		} else {
			c.release()
		}
	}
	e.candidates = nil
	e.started = false
}

// Objects returns the camera id and the promoted objects accumulated so
// far in the current (or most recently completed) batch.
func (e *Engine) Objects() (int, []Object) {
	return e.camID, e.objects
}

// closeFrame runs the four ordered steps of the frame-close algorithm
// against frame f: retire stale candidates, extend survivors with f's
// detections, disambiguate and commit, then seed new candidates from the
// previous frame's and f's unreferenced detections. f becomes the new
// "previous" frame on return.
func (e *Engine) closeFrame(f *Frame) {
	e.retireStale(f.MJD)
	e.extend(f)
	e.disambiguateAndCommit(f.MJD)
	e.seed(f)
	e.prevFrame = f
}

func (e *Engine) retireStale(frameMJD float64) {
	survivors := e.candidates[:0]
	for _, c := range e.candidates {
		dt := frameMJD - c.LastUpdateMJD
		if dt > e.params.DtMax || dt < 0 {
			if len(c.Confirmed) >= e.params.NptMin {
				e.objects = append(e.objects, c.toObject(e.camID))
			} else {
				c.release()
			}
			continue
		}
		survivors = append(survivors, c)
	}
	e.candidates = survivors
}

func (e *Engine) extend(f *Frame) {
	for _, c := range e.candidates {
		p := c.lastConfirmed()
		for _, d := range f.Detections {
			if !stepGate(e.params, p, d) {
				continue
			}
			if c.hasVelocity() {
				ex, ey, _ := c.predict(f.MJD)
				if absf(ex-d.X) > e.params.DxyMax || absf(ey-d.Y) > e.params.DxyMax {
					continue
				}
			}
			c.admit(d)
		}
	}
}

func (e *Engine) disambiguateAndCommit(frameMJD float64) {
	for _, c := range e.candidates {
		winner := c.disambiguate(frameMJD)
		if winner == nil {
			continue
		}
		c.commit(winner)
	}
}

func (e *Engine) seed(f *Frame) {
	uPrev := e.prevFrame.unreferenced()
	if len(uPrev) == 0 {
		return
	}
	uF := f.unreferenced()
	for _, a := range uPrev {
		for _, b := range uF {
			if !stepGate(e.params, a, b) {
				continue
			}
			c := newCandidate(e.nextSeq, a, b)
			e.nextSeq++
			a.incRef()
			b.incRef()
			e.candidates = append(e.candidates, c)
		}
	}
}

// stepGate is the coarse per-axis displacement admissibility check shared
// by extend (against the candidate's last confirmed point) and seed
// (against a previous-frame/current-frame pair).
func stepGate(p Params, a, b *Detection) bool {
	dx := absf(b.X - a.X)
	dy := absf(b.Y - a.Y)
	return dx >= p.StepMin && dx <= p.StepMax && dy >= p.StepMin && dy <= p.StepMax
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
