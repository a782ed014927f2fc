// Package ils_test covers the configuration surface with a testify suite:
// default knobs, fail-fast budget checks, operator-driven instance
// minimums, and sentinel identity under errors.Is.
package ils_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ils"
)

// OptionsSuite exercises Options validation through the public API.
type OptionsSuite struct {
	suite.Suite
}

// TestDefaults verifies the canonical configuration.
func (s *OptionsSuite) TestDefaults() {
	opts := ils.DefaultOptions()
	require.Equal(s.T(), ils.IteratedLocalSearch, opts.Algo)
	require.Equal(s.T(), 100, opts.MaxIterations)
	require.Equal(s.T(), 50, opts.MaxNoImprove)
	require.EqualValues(s.T(), 0, opts.Seed)
	require.Nil(s.T(), opts.Metric)
	require.Equal(s.T(), 1, opts.Restarts)
	require.Zero(s.T(), opts.TargetCost)
}

// TestBudgetsMustBePositive rejects non-positive budgets without clamping.
func (s *OptionsSuite) TestBudgetsMustBePositive() {
	pts := ringSquare8()

	for _, tc := range []struct {
		name   string
		mutate func(*ils.Options)
	}{
		{"zero iterations", func(o *ils.Options) { o.MaxIterations = 0 }},
		{"negative iterations", func(o *ils.Options) { o.MaxIterations = -5 }},
		{"zero patience", func(o *ils.Options) { o.MaxNoImprove = 0 }},
		{"negative patience", func(o *ils.Options) { o.MaxNoImprove = -1 }},
		{"negative target", func(o *ils.Options) { o.TargetCost = -1 }},
	} {
		opts := ils.DefaultOptions()
		tc.mutate(&opts)
		_, err := ils.Solve(pts, opts)
		require.ErrorIs(s.T(), err, ils.ErrInvalidBudget, tc.name)
	}
}

// TestInstanceMinimums: the double bridge raises the floor to 8 points,
// the 2-opt-only variants keep it at 4.
func (s *OptionsSuite) TestInstanceMinimums() {
	pts := ringSquare8()

	opts := ils.DefaultOptions()
	_, err := ils.Solve(pts[:7], opts)
	require.ErrorIs(s.T(), err, ils.ErrTooFewPoints)

	opts.Algo = ils.RandomSearch
	opts.MaxIterations = 5
	_, err = ils.Solve(pts[:4], opts)
	require.NoError(s.T(), err)

	_, err = ils.Solve(pts[:3], opts)
	require.ErrorIs(s.T(), err, ils.ErrTooFewPoints)
}

// TestUnknownAlgorithm is rejected up front.
func (s *OptionsSuite) TestUnknownAlgorithm() {
	opts := ils.DefaultOptions()
	opts.Algo = ils.Algorithm(42)
	_, err := ils.Solve(ringSquare8(), opts)
	require.ErrorIs(s.T(), err, ils.ErrUnsupportedAlgorithm)
}

// TestCustomMetricIsHonored plugs the unrounded metric and checks the
// result pairs permutation and cost consistently under it.
func (s *OptionsSuite) TestCustomMetricIsHonored() {
	pts := ringSquare8()
	opts := ils.DefaultOptions()
	opts.Metric = ils.Euclidean
	opts.MaxIterations = 20
	opts.MaxNoImprove = 20

	res, err := ils.Solve(pts, opts)
	require.NoError(s.T(), err)
	require.NoError(s.T(), ils.ValidatePermutation(res.Perm, len(pts)))

	recomputed, err := ils.TourCost(pts, res.Perm, ils.Euclidean)
	require.NoError(s.T(), err)
	require.Equal(s.T(), recomputed, res.Cost)
}

func TestOptionsSuite(t *testing.T) {
	suite.Run(t, new(OptionsSuite))
}
