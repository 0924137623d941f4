package pvrec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultParamsValid(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
}

func TestWithBuildersAreImmutable(t *testing.T) {
	base := DefaultParams()
	tuned := base.WithNptMin(3).WithDtMax(0.5).WithStepWindow(2, 40).WithDxyMax(1)

	require.Equal(t, 5, base.NptMin, "WithNptMin must not mutate the receiver")
	require.Equal(t, 3, tuned.NptMin)
	require.Equal(t, 0.5, tuned.DtMax)
	require.Equal(t, 2.0, tuned.StepMin)
	require.Equal(t, 40.0, tuned.StepMax)
	require.Equal(t, 1.0, tuned.DxyMax)
}

func TestValidateRejectsBadRanges(t *testing.T) {
	cases := []struct {
		name string
		p    Params
	}{
		{"npt_min zero", Params{NptMin: 0, DtMax: 1, StepMin: 1, StepMax: 2, DxyMax: 1}},
		{"dt_max zero", Params{NptMin: 1, DtMax: 0, StepMin: 1, StepMax: 2, DxyMax: 1}},
		{"step_min negative", Params{NptMin: 1, DtMax: 1, StepMin: -1, StepMax: 2, DxyMax: 1}},
		{"step_max below step_min", Params{NptMin: 1, DtMax: 1, StepMin: 5, StepMax: 2, DxyMax: 1}},
		{"dxy_max zero", Params{NptMin: 1, DtMax: 1, StepMin: 1, StepMax: 2, DxyMax: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.p.Validate())
		})
	}
}
