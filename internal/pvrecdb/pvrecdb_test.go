package pvrecdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banshee-data/pvrec/internal/pvrec"
)

func TestOpenAppliesMigrations(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='tracklet'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "tracklet", name)
}

func TestIndexAndListAndSummarize(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	defer db.Close()

	obj := pvrec.Object{CamID: 3, Points: make([]pvrec.Detection, 5)}
	require.NoError(t, db.IndexObject(obj, "20240601", "/out/20240601_003_0001.txt", 1000))
	require.NoError(t, db.IndexObject(obj, "20240602", "/out/20240602_003_0001.txt", 2000))

	rows, err := db.ListByCamera(3)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "20240602", rows[0].Night, "most recent night first")

	summary, err := db.Summarize()
	require.NoError(t, err)
	require.Len(t, summary, 1)
	require.Equal(t, 3, summary[0].CameraID)
	require.Equal(t, 2, summary[0].TrackletCount)
	require.Equal(t, 10, summary[0].TotalPoints)
}
