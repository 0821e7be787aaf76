package taam

import "math"

// RoundQuarter rounds to the nearest 0.25, with halfway values rounding
// away from zero.
func RoundQuarter(v float64) float64 {
	return math.Round(v*4) / 4
}

// AxisScore computes the weighted axis score for a record of answers
// keyed by question (q8, q9, ...). Questions that are absent or whose
// answers cannot be mapped are skipped and the remaining weights are
// renormalized. The second return is false when no question on the axis
// could be scored, or the axis is unknown.
func AxisScore(record map[string]string, axis string) (float64, bool) {
	weights, ok := axisWeights[axis]
	if !ok {
		return 0, false
	}
	var sum, total float64
	for _, qw := range weights {
		raw, ok := record[qw.key]
		if !ok {
			continue
		}
		v, ok := MapAnswer(qw.key, raw)
		if !ok {
			continue
		}
		sum += v * qw.weight
		total += qw.weight
	}
	if total == 0 {
		return 0, false
	}
	return RoundQuarter(sum / total), true
}

// AllAxes scores every axis for the record, omitting axes with no
// scorable answers. Iteration follows canonical axis order.
func AllAxes(record map[string]string) map[string]float64 {
	scores := make(map[string]float64, len(Axes))
	for _, axis := range Axes {
		if v, ok := AxisScore(record, axis); ok {
			scores[axis] = v
		}
	}
	return scores
}
