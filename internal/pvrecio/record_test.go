package pvrecio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLineHappyPath(t *testing.T) {
	conv := NewConverter()
	line := "2024-03-15 20:30:00, 12, 512.5, 300.25, 123.456, -14.2, 18.3, 0.05, 250000, 7"
	rec, err := ParseLine(line, conv)
	require.NoError(t, err)

	require.Equal(t, 7, rec.CamID)
	require.Equal(t, 12, rec.Detection.FrameNo)
	require.Equal(t, 512.5, rec.Detection.X)
	require.Equal(t, 300.25, rec.Detection.Y)
	require.Equal(t, 123.456, rec.Detection.RA)
	require.Equal(t, -14.2, rec.Detection.Dec)
	require.Equal(t, 18.3, rec.Detection.Mag)
	require.False(t, rec.FaintMag)
}

func TestParseLineFlagsFaintMagnitude(t *testing.T) {
	conv := NewConverter()
	line := "2024-03-15 20:30:00, 12, 1, 1, 1, 1, 20.5, 0.05, 0, 1"
	rec, err := ParseLine(line, conv)
	require.NoError(t, err)
	require.True(t, rec.FaintMag)
}

func TestParseLineRejectsWrongFieldCount(t *testing.T) {
	_, err := ParseLine("2024-03-15 20:30:00, 12, 1, 1", NewConverter())
	require.Error(t, err)
}

func TestParseLineRejectsMalformedTimestamp(t *testing.T) {
	conv := NewConverter()
	line := "not-a-date, 12, 1, 1, 1, 1, 1, 1, 1, 1"
	_, err := ParseLine(line, conv)
	require.Error(t, err)
}

func TestParseLineRejectsMalformedNumericField(t *testing.T) {
	conv := NewConverter()
	line := "2024-03-15 20:30:00, 12, notanumber, 1, 1, 1, 1, 1, 1, 1"
	_, err := ParseLine(line, conv)
	require.Error(t, err)
}
