package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadTuningConfigPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"npt_min": 3, "dxy_max": 2.0}`), 0o644))

	cfg, err := LoadTuningConfig(path)
	require.NoError(t, err)

	params, err := cfg.ToParams()
	require.NoError(t, err)
	require.Equal(t, 3, params.NptMin)
	require.Equal(t, 2.0, params.DxyMax)
	require.Equal(t, 1.0, params.StepMin, "unset fields fall back to pvrec.DefaultParams")
	require.Equal(t, 100.0, params.StepMax)
}

func TestLoadTuningConfigRejectsNonJSONExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.txt")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	_, err := LoadTuningConfig(path)
	require.Error(t, err)
}

func TestLoadTuningConfigRejectsInvalidParams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"npt_min": 0}`), 0o644))

	_, err := LoadTuningConfig(path)
	require.Error(t, err)
}

func TestMustLoadDefaultConfigLoadsCanonicalFile(t *testing.T) {
	cfg := MustLoadDefaultConfig()
	params, err := cfg.ToParams()
	require.NoError(t, err)
	require.NoError(t, params.Validate())
}
