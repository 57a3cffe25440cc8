package encoding

import (
	"testing"

	"github.com/arloliu/polypack/errs"
	"github.com/arloliu/polypack/section"
	"github.com/stretchr/testify/require"
)

var compactLimits = section.Limits{MaxValue: 300, MaxRunLength: 1000}

func TestPlanRuns(t *testing.T) {
	tests := []struct {
		name   string
		input  []uint32
		header section.Header
		runs   []Run
	}{
		{
			name:   "empty",
			input:  nil,
			header: section.Header{},
			runs:   nil,
		},
		{
			name:   "single value",
			input:  []uint32{42},
			header: section.Header{MaxValue: 42, MaxRunLength: 1},
			runs:   []Run{{42, 1}},
		},
		{
			name:   "simple case",
			input:  []uint32{1, 1, 2, 2, 2, 3},
			header: section.Header{MaxValue: 3, MaxRunLength: 3},
			runs:   []Run{{3, 1}, {2, 3}, {1, 2}},
		},
		{
			name:   "unordered input",
			input:  []uint32{5, 300, 5, 1, 300, 5},
			header: section.Header{MaxValue: 300, MaxRunLength: 3},
			runs:   []Run{{300, 2}, {5, 3}, {1, 1}},
		},
		{
			name:   "all distinct",
			input:  []uint32{9, 8, 7, 6, 5, 4, 3, 2, 1},
			header: section.Header{MaxValue: 9, MaxRunLength: 1},
			runs:   []Run{{9, 1}, {8, 1}, {7, 1}, {6, 1}, {5, 1}, {4, 1}, {3, 1}, {2, 1}, {1, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanRuns(tt.input, compactLimits)
			require.NoError(t, err)
			require.Equal(t, tt.header, plan.Header)
			require.Equal(t, tt.runs, plan.Runs)
			require.Equal(t, len(tt.input), plan.Len())
		})
	}
}

func TestPlanRuns_DoesNotModifyInput(t *testing.T) {
	input := []uint32{1, 3, 2, 3}
	_, err := PlanRuns(input, compactLimits)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 3, 2, 3}, input)
}

func TestPlanRuns_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input []uint32
		msg   string
	}{
		{"zero", []uint32{1, 0, 2}, "value 0 at index 1"},
		{"above max", []uint32{301}, "value 301 at index 0"},
		{"far above max", []uint32{5, 5, 65500}, "value 65500 at index 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanRuns(tt.input, compactLimits)
			require.ErrorIs(t, err, errs.ErrOutOfRangeValue)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestPlanRuns_RunLengthBoundary(t *testing.T) {
	limits := section.Limits{MaxValue: 10, MaxRunLength: 4}

	t.Run("exactly max run length", func(t *testing.T) {
		plan, err := PlanRuns([]uint32{7, 7, 7, 7}, limits)
		require.NoError(t, err)
		require.Equal(t, section.Header{MaxValue: 7, MaxRunLength: 4}, plan.Header)
		require.Equal(t, []Run{{7, 4}}, plan.Runs)
	})

	t.Run("one over max run length", func(t *testing.T) {
		_, err := PlanRuns([]uint32{7, 7, 7, 7, 7}, limits)
		require.ErrorIs(t, err, errs.ErrRunTooLong)
		require.Contains(t, err.Error(), "value 7 repeats 5 times")
	})
}

func TestPlan_Expand(t *testing.T) {
	plan := Plan{
		Header: section.Header{MaxValue: 3, MaxRunLength: 3},
		Runs:   []Run{{3, 1}, {2, 3}, {1, 2}},
	}
	require.Equal(t, []uint32{3, 2, 2, 2, 1, 1}, plan.Expand())
	require.Empty(t, Plan{}.Expand())
}
