package pvrecreport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banshee-data/pvrec/internal/pvrec"
)

func TestPlotTrajectoryWritesFile(t *testing.T) {
	obj := pvrec.Object{
		ID:    "t1",
		CamID: 3,
		Points: []pvrec.Detection{
			{FrameNo: 1, X: 100, Y: 100},
			{FrameNo: 2, X: 110, Y: 110},
			{FrameNo: 3, X: 120, Y: 120},
		},
	}
	outPath := filepath.Join(t.TempDir(), "trajectory.png")
	require.NoError(t, PlotTrajectory(obj, outPath))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestPlotTrajectoryRejectsEmptyObject(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "empty.png")
	err := PlotTrajectory(pvrec.Object{}, outPath)
	require.Error(t, err)
}
