// Package config loads pvrec's tuning parameters from JSON, mirroring the
// teacher's internal/config.TuningConfig: optional pointer fields so a
// partial override file only touches the settings it names, with the
// canonical defaults living in config/pvrec.defaults.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/pvrec/internal/pvrec"
)

// DefaultConfigPath is the canonical tuning defaults file, the single
// source of truth for pvrec.DefaultParams's on-disk counterpart.
const DefaultConfigPath = "config/pvrec.defaults.json"

// TuningConfig is the JSON-loadable form of pvrec.Params (§6). Every field
// is optional; a field omitted from the file keeps its built-in default
// when converted with ToParams.
type TuningConfig struct {
	NptMin  *int     `json:"npt_min,omitempty"`
	DtMax   *float64 `json:"dt_max,omitempty"`
	StepMin *float64 `json:"step_min,omitempty"`
	StepMax *float64 `json:"step_max,omitempty"`
	DxyMax  *float64 `json:"dxy_max,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with every field nil.
func EmptyTuningConfig() *TuningConfig { return &TuningConfig{} }

// LoadTuningConfig loads a TuningConfig from a JSON file. Fields omitted
// from the file are left nil; ToParams falls back to pvrec.DefaultParams
// for any field still nil.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config: tuning file must have .json extension, got %q", ext)
	}

	fi, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", cleanPath, err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fi.Size() > maxFileSize {
		return nil, fmt.Errorf("config: %s too large: %d bytes (max %d)", cleanPath, fi.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", cleanPath, err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", cleanPath, err)
	}
	if _, err := cfg.ToParams(); err != nil {
		return nil, fmt.Errorf("config: invalid %s: %w", cleanPath, err)
	}
	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults file, searching from
// the current directory up through a handful of parent directories (tests
// run from varying package depths). Panics if the file cannot be found.
// Tests use it; the CLI tools instead call LoadTuningConfig on
// DefaultConfigPath relative to the working directory. Mirrors
// config.MustLoadDefaultConfig in the teacher repo.
func MustLoadDefaultConfig() *TuningConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath,
		"../../../" + DefaultConfigPath,
		"../../../../" + DefaultConfigPath,
	}
	for _, p := range candidates {
		if cfg, err := LoadTuningConfig(p); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run from the repository root or a package under it")
}

// ToParams converts the config into a validated pvrec.Params, applying
// pvrec.DefaultParams for every field left nil.
func (c *TuningConfig) ToParams() (pvrec.Params, error) {
	p := pvrec.DefaultParams()
	if c.NptMin != nil {
		p = p.WithNptMin(*c.NptMin)
	}
	if c.DtMax != nil {
		p = p.WithDtMax(*c.DtMax)
	}
	if c.StepMin != nil || c.StepMax != nil {
		min, max := p.StepMin, p.StepMax
		if c.StepMin != nil {
			min = *c.StepMin
		}
		if c.StepMax != nil {
			max = *c.StepMax
		}
		p = p.WithStepWindow(min, max)
	}
	if c.DxyMax != nil {
		p = p.WithDxyMax(*c.DxyMax)
	}
	if err := p.Validate(); err != nil {
		return pvrec.Params{}, err
	}
	return p, nil
}
