package stats

import "math"

// OutlierThreshold is the modified z-score above which a sample is
// considered an outlier.
const OutlierThreshold = 3.5

// ModifiedZScores computes a robust outlier score for every sample,
// based on the median and the median absolute deviation rather than
// mean and standard deviation, so the scores are not distorted by the
// very outliers they are meant to detect.
//
// See "Detection of Outliers", NIST/SEMATECH e-Handbook of Statistical
// Methods (Iglewicz and Hoaglin).
func ModifiedZScores(values []float64) []float64 {
	med := Median(values)

	deviations := make([]float64, len(values))
	for i, v := range values {
		deviations[i] = math.Abs(v - med)
	}
	mad := Median(deviations)

	scores := make([]float64, len(values))
	if mad == 0 {
		// All samples within rounding of the median; nothing can
		// meaningfully be called an outlier.
		return scores
	}
	for i, v := range values {
		scores[i] = 0.6745 * (v - med) / mad
	}
	return scores
}
