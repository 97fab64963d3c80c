package benchmark

import (
	"math"
	"sort"

	"github.com/sftfjugg/hyperfine/internal/options"
)

// ResultWithRelativeSpeed annotates a Result with its speed relative
// to the fastest command of the compared set.
type ResultWithRelativeSpeed struct {
	Result *Result

	// RelativeSpeed is the ratio of this result's mean to the fastest
	// mean; 1.0 for the fastest itself.
	RelativeSpeed float64

	// RelativeSpeedStddev is the propagated uncertainty of the ratio;
	// nil when either input standard deviation is unknown.
	RelativeSpeedStddev *float64

	// IsFastest marks the reference result. Ties at the minimum mean
	// go to the first-encountered result.
	IsFastest bool
}

// FastestOf returns the result with the minimum mean, first encountered
// winning ties.
func FastestOf(results []*Result) *Result {
	fastest := results[0]
	for _, r := range results[1:] {
		if r.Mean < fastest.Mean {
			fastest = r
		}
	}
	return fastest
}

func computeRelativeSpeeds(results []*Result, fastest *Result, order options.SortOrder) []ResultWithRelativeSpeed {
	annotated := make([]ResultWithRelativeSpeed, 0, len(results))
	for _, r := range results {
		entry := ResultWithRelativeSpeed{Result: r, IsFastest: r == fastest}

		if fastest.Mean == 0 {
			// Degenerate reference: zero-mean results tie at 1.0,
			// anything measurable is infinitely slower.
			if r.Mean == 0 {
				entry.RelativeSpeed = 1.0
			} else {
				entry.RelativeSpeed = math.Inf(1)
			}
			annotated = append(annotated, entry)
			continue
		}

		ratio := r.Mean / fastest.Mean
		entry.RelativeSpeed = ratio

		// Uncertainty propagation for a quotient of independent
		// variables; the covariance term is assumed zero.
		if r.Stddev != nil && fastest.Stddev != nil && r.Mean != 0 {
			rel := *r.Stddev / r.Mean
			relFastest := *fastest.Stddev / fastest.Mean
			stddev := ratio * math.Sqrt(rel*rel+relFastest*relFastest)
			entry.RelativeSpeedStddev = &stddev
		}
		annotated = append(annotated, entry)
	}

	switch order {
	case options.SortByCommand:
	case options.SortByMeanTime:
		sort.SliceStable(annotated, func(i, j int) bool {
			return annotated[i].Result.Mean < annotated[j].Result.Mean
		})
	}
	return annotated
}

// ComputeWithCheck annotates every result with its relative speed.
// When the fastest mean is exactly zero no meaningful comparison
// exists and nil is returned.
func ComputeWithCheck(results []*Result, order options.SortOrder) []ResultWithRelativeSpeed {
	fastest := FastestOf(results)
	if fastest.Mean == 0 {
		return nil
	}
	return computeRelativeSpeeds(results, fastest, order)
}

// Compute is the unchecked variant of ComputeWithCheck: with a
// zero-mean fastest result it assigns ratio 1.0 to zero-mean results
// and +Inf to everything else instead of failing.
func Compute(results []*Result, order options.SortOrder) []ResultWithRelativeSpeed {
	return computeRelativeSpeeds(results, FastestOf(results), order)
}
