package pvrec

import (
	"fmt"
	"time"
)

// Params is the engine's tuning configuration (§6). Zero-value Params is
// invalid; use DefaultParams and the With* builders.
type Params struct {
	NptMin   int
	DtMax    float64
	StepMin  float64
	StepMax  float64
	DxyMax   float64
}

// DefaultParams returns the recognizer's stock configuration: a 60 second
// staleness window, a 1-100 pixel per-axis step, and a 5 pixel prediction
// tolerance.
func DefaultParams() Params {
	return Params{
		NptMin:  5,
		DtMax:   60 * time.Second.Seconds() / 86400.0,
		StepMin: 1.0,
		StepMax: 100.0,
		DxyMax:  5.0,
	}
}

// WithNptMin returns a copy of p with NptMin set.
func (p Params) WithNptMin(n int) Params { p.NptMin = n; return p }

// WithDtMax returns a copy of p with DtMax (in days) set.
func (p Params) WithDtMax(d float64) Params { p.DtMax = d; return p }

// WithStepWindow returns a copy of p with StepMin/StepMax set.
func (p Params) WithStepWindow(min, max float64) Params {
	p.StepMin, p.StepMax = min, max
	return p
}

// WithDxyMax returns a copy of p with DxyMax set.
func (p Params) WithDxyMax(d float64) Params { p.DxyMax = d; return p }

// Validate reports the first parameter out of range. A valid Params
// guarantees the engine never divides by a non-positive step window and
// never promotes with a non-positive point threshold.
func (p Params) Validate() error {
	if p.NptMin < 1 {
		return fmt.Errorf("pvrec: npt_min must be >= 1, got %d", p.NptMin)
	}
	if p.DtMax <= 0 {
		return fmt.Errorf("pvrec: dt_max must be > 0, got %g", p.DtMax)
	}
	if p.StepMin < 0 {
		return fmt.Errorf("pvrec: step_min must be >= 0, got %g", p.StepMin)
	}
	if p.StepMax <= p.StepMin {
		return fmt.Errorf("pvrec: step_max (%g) must be > step_min (%g)", p.StepMax, p.StepMin)
	}
	if p.DxyMax <= 0 {
		return fmt.Errorf("pvrec: dxy_max must be > 0, got %g", p.DxyMax)
	}
	return nil
}
