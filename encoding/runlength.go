package encoding

import (
	"fmt"
	"slices"

	"github.com/arloliu/polypack/errs"
	"github.com/arloliu/polypack/section"
)

// Run is a maximal block of equal values in canonical (descending) order.
type Run struct {
	Value uint32
	Count uint32
}

// Plan is the canonical run sequence of one message together with its header.
//
// Runs are ordered by strictly decreasing Value. Header.MaxValue equals the
// first run's value and Header.MaxRunLength equals the largest Count.
type Plan struct {
	Header section.Header
	Runs   []Run
}

// Len returns the number of values the plan expands to.
func (p Plan) Len() int {
	n := 0
	for _, r := range p.Runs {
		n += int(r.Count)
	}

	return n
}

// Expand returns the canonical descending expansion of the plan.
func (p Plan) Expand() []uint32 {
	out := make([]uint32, 0, p.Len())
	for _, r := range p.Runs {
		for iter := uint32(0); iter < r.Count; iter++ {
			out = append(out, r.Value)
		}
	}

	return out
}

// PlanRuns derives the header and the canonical run sequence of list.
//
// The input slice is not modified.
//
// Parameters:
//   - list: values in any order
//   - limits: codec limits every value and run must respect
//
// Returns:
//   - Plan: header and runs, zero Plan for an empty list
//   - error: ErrOutOfRangeValue or ErrRunTooLong
func PlanRuns(list []uint32, limits section.Limits) (Plan, error) {
	if len(list) == 0 {
		return Plan{}, nil
	}

	for i, v := range list {
		if v == 0 || v > limits.MaxValue {
			return Plan{}, fmt.Errorf("%w: value %d at index %d not in [1, %d]",
				errs.ErrOutOfRangeValue, v, i, limits.MaxValue)
		}
	}

	sorted := slices.Clone(list)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	runs := make([]Run, 0, min(len(sorted), int(limits.MaxValue)))
	var maxRun int
	for i := 0; i < len(sorted); {
		v := sorted[i]
		j := i + 1
		for j < len(sorted) && sorted[j] == v {
			j++
		}

		count := j - i
		if count > int(limits.MaxRunLength) {
			return Plan{}, fmt.Errorf("%w: value %d repeats %d times, max %d",
				errs.ErrRunTooLong, v, count, limits.MaxRunLength)
		}

		runs = append(runs, Run{Value: v, Count: uint32(count)}) //nolint: gosec
		maxRun = max(maxRun, count)
		i = j
	}

	return Plan{
		Header: section.Header{
			MaxValue:     sorted[0],
			MaxRunLength: uint32(maxRun), //nolint: gosec
		},
		Runs: runs,
	}, nil
}
