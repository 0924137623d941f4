package pvrec

import "github.com/google/uuid"

// Candidate is a tracklet under construction. It carries an ordered
// confirmed point list, a tentative list admitted in the current frame and
// awaiting disambiguation, and a motion model that matures as points accrue:
// no velocity below 2 confirmed points, linear velocity at exactly 2,
// constant acceleration from 3 onward.
type Candidate struct {
	ID string

	// seq is the insertion-order sequence number assigned by the engine.
	// Nothing reads it; iteration order comes from the engine's candidate
	// slice, which is kept in insertion order independent of ID (a random
	// UUID).
	seq int64

	Confirmed []*Detection
	Tentative []*Detection

	VX, VY float64
	AX, AY float64

	LastUpdateMJD float64
}

func newCandidate(seq int64, a, b *Detection) *Candidate {
	dt := b.MJD - a.MJD
	c := &Candidate{
		ID:            uuid.NewString(),
		seq:           seq,
		Confirmed:     []*Detection{a, b},
		LastUpdateMJD: b.MJD,
	}
	if dt > 0 {
		c.VX = (b.X - a.X) / dt
		c.VY = (b.Y - a.Y) / dt
	}
	return c
}

// lastConfirmed returns the most recently confirmed point, which always
// exists once a candidate has been seeded.
func (c *Candidate) lastConfirmed() *Detection {
	return c.Confirmed[len(c.Confirmed)-1]
}

// hasVelocity reports whether the candidate has at least 2 confirmed
// points and thus a meaningful (vx, vy).
func (c *Candidate) hasVelocity() bool { return len(c.Confirmed) >= 2 }

// hasAcceleration reports whether the candidate has at least 3 confirmed
// points and thus a meaningful (ax, ay).
func (c *Candidate) hasAcceleration() bool { return len(c.Confirmed) >= 3 }

// predict returns the expected (x, y) at time t, per §4.2's motion model.
// ok is false when the candidate has fewer than 2 confirmed points, in
// which case the step gate alone governs admission.
func (c *Candidate) predict(t float64) (x, y float64, ok bool) {
	if !c.hasVelocity() {
		return 0, 0, false
	}
	p := c.lastConfirmed()
	dt := t - p.MJD
	x = p.X + c.VX*dt
	y = p.Y + c.VY*dt
	if c.hasAcceleration() {
		x += 0.5 * c.AX * dt * dt
		y += 0.5 * c.AY * dt * dt
	}
	return x, y, true
}

// admit appends q to the tentative list and increments its reference
// counter. Called during the extend step once q has passed the step and
// (if applicable) prediction gates.
func (c *Candidate) admit(q *Detection) {
	c.Tentative = append(c.Tentative, q)
	q.incRef()
}

// commit picks the winning tentative detection (the caller has already
// decided which one, per the disambiguation rule in §4.1 step 3), appends
// it to the confirmed list, updates the motion model, and clears the
// tentative list (releasing the losers' reference counts).
func (c *Candidate) commit(winner *Detection) {
	for _, d := range c.Tentative {
		if d != winner {
			d.decRef()
		}
	}
	c.Tentative = c.Tentative[:0]

	p := c.lastConfirmed()
	hadVelocity := c.hasVelocity()
	oldVX, oldVY := c.VX, c.VY

	dt := winner.MJD - p.MJD
	c.Confirmed = append(c.Confirmed, winner)
	c.LastUpdateMJD = winner.MJD

	if dt <= 0 {
		// Degenerate or inverted time step: keep the point but skip the
		// velocity/acceleration update entirely.
		return
	}

	newVX := (winner.X - p.X) / dt
	newVY := (winner.Y - p.Y) / dt
	if hadVelocity {
		c.AX = newVX - oldVX
		c.AY = newVY - oldVY
	}
	c.VX, c.VY = newVX, newVY
}

// disambiguate picks the tentative detection to commit at frame time
// frameMJD, following §4.1 step 3: minimum squared distance to the
// predicted position when a motion model exists, otherwise the earliest
// (first-admitted) tentative detection. It returns nil if there is
// nothing tentative to commit.
func (c *Candidate) disambiguate(frameMJD float64) *Detection {
	if len(c.Tentative) == 0 {
		return nil
	}
	if ex, ey, ok := c.predict(frameMJD); ok {
		best := c.Tentative[0]
		bestSq := sqDist(ex, ey, best.X, best.Y)
		for _, d := range c.Tentative[1:] {
			sq := sqDist(ex, ey, d.X, d.Y)
			if sq < bestSq {
				best, bestSq = d, sq
			}
		}
		return best
	}
	return c.Tentative[0]
}

func sqDist(ex, ey, x, y float64) float64 {
	dx := ex - x
	dy := ey - y
	return dx*dx + dy*dy
}

// release decrements the reference counters of every point the candidate
// still holds (confirmed and any leftover tentative). Called when a
// candidate is discarded without promotion.
func (c *Candidate) release() {
	for _, d := range c.Confirmed {
		d.decRef()
	}
	for _, d := range c.Tentative {
		d.decRef()
	}
	c.Tentative = nil
}

// toObject copies the candidate's confirmed points into a fresh, immutable
// Object. The copy is by value, so later engine state changes (or, in
// practice, garbage collection of the original Detections once
// unreferenced) cannot be observed through the emitted object.
func (c *Candidate) toObject(camID int) Object {
	points := make([]Detection, len(c.Confirmed))
	for i, d := range c.Confirmed {
		points[i] = *d
		d.decRef()
	}
	for _, d := range c.Tentative {
		d.decRef()
	}
	c.Tentative = nil
	return Object{
		ID:     uuid.NewString(),
		CamID:  camID,
		Points: points,
	}
}
