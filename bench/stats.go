package bench

import "math"

// MeanAndCI95 returns the arithmetic mean of samples and a 95% confidence
// half-width around it, using the normal approximation (1.96 standard
// errors). With fewer than two samples the interval is zero: there is no
// variance to estimate from a single point.
func MeanAndCI95(samples []float64) (mean, ci95 float64) {
	n := len(samples)
	if n == 0 {
		return 0, 0
	}

	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean = sum / float64(n)

	if n < 2 {
		return mean, 0
	}

	var sumSquaredDiff float64
	for _, s := range samples {
		d := s - mean
		sumSquaredDiff += d * d
	}
	variance := sumSquaredDiff / float64(n-1) // sample variance, ddof=1
	stderr := math.Sqrt(variance) / math.Sqrt(float64(n))
	ci95 = 1.96 * stderr

	return mean, ci95
}
