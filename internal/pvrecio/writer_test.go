package pvrecio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banshee-data/pvrec/internal/pvrec"
)

func TestWriteObjectNamingAndContent(t *testing.T) {
	dir := t.TempDir()
	conv := NewConverter()
	mjd := conv.ToMJD(2024, 6, 1, 10, 0, 0, 0)

	obj := pvrec.Object{
		CamID: 3,
		Points: []pvrec.Detection{
			{FrameNo: 1, MJD: mjd, RA: 10.5, Dec: -4.25, Mag: 15.5},
			{FrameNo: 2, MJD: mjd + 1.0/86400.0, RA: 10.6, Dec: -4.24, Mag: 21.0},
		},
	}

	seq := NewSeqCounters()
	path, err := WriteObject(dir, obj, seq, DefaultFaintMagChecker)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "20240601_003_0001.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "\r\n")
	lines := strings.Split(strings.TrimRight(content, "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "15.50")
	require.Contains(t, lines[1], "99.99", "faint magnitude must render as 99.99")
}

func TestWriteObjectSequenceIncrementsPerCamera(t *testing.T) {
	dir := t.TempDir()
	seq := NewSeqCounters()
	mk := func(cam int) pvrec.Object {
		return pvrec.Object{CamID: cam, Points: []pvrec.Detection{{FrameNo: 1, MJD: 51544, RA: 1, Dec: 1, Mag: 1}}}
	}

	p1, err := WriteObject(dir, mk(1), seq, nil)
	require.NoError(t, err)
	p2, err := WriteObject(dir, mk(1), seq, nil)
	require.NoError(t, err)
	p3, err := WriteObject(dir, mk(2), seq, nil)
	require.NoError(t, err)

	require.Contains(t, p1, "_001_0001.txt")
	require.Contains(t, p2, "_001_0002.txt")
	require.Contains(t, p3, "_002_0001.txt")
}

func TestWriteObjectRejectsEmptyPoints(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteObject(dir, pvrec.Object{CamID: 1}, NewSeqCounters(), nil)
	require.Error(t, err)
}
