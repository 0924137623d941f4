package pvrecio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToMJDKnownEpoch(t *testing.T) {
	conv := NewConverter()
	// 2000-01-01 00:00:00 UTC is MJD 51544.0; the mean-of-exposure +5s
	// offset shifts that by 5/86400 days.
	got := conv.ToMJD(2000, 1, 1, 0, 0, 0, 0)
	want := 51544.0 + 5.0/86400.0
	require.InDelta(t, want, got, 1e-9)
}

func TestToMJDMJDEpoch(t *testing.T) {
	conv := NewConverter()
	// 1858-11-17 00:00:00 UTC is MJD 0 by definition.
	got := conv.ToMJD(1858, 11, 17, 0, 0, 0, 0)
	want := 5.0 / 86400.0
	require.InDelta(t, want, got, 1e-9)
}

func TestMjd2CalRoundTrip(t *testing.T) {
	conv := NewConverter()
	mjd := conv.ToMJD(2024, 3, 15, 20, 30, 0, 500000)
	year, month, day, frac := Mjd2Cal(mjd)
	require.Equal(t, 2024, year)
	require.Equal(t, 3, month)
	require.Equal(t, 15, day)

	totalSeconds := frac * 86400.0
	require.InDelta(t, 20*3600+30*60+0+0.5+5, totalSeconds, 1e-6)
}

func TestMjd2CalHandlesDayRollover(t *testing.T) {
	conv := NewConverter()
	// 23:59:58 + 5s exposure offset rolls into the next calendar day.
	mjd := conv.ToMJD(2024, 1, 1, 23, 59, 58, 0)
	year, month, day, frac := Mjd2Cal(mjd)
	require.Equal(t, 2024, year)
	require.Equal(t, 1, month)
	require.Equal(t, 2, day)
	require.True(t, math.Abs(frac*86400.0-3.0) < 1e-6)
}
