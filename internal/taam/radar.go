package taam

import (
	"math"
	"strings"
)

// RadarPoint is one axis entry of a radar chart series. Percent is the
// value expressed against the 5-point ceiling.
type RadarPoint struct {
	Axis    string  `json:"axis"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// RadarSeries renders axis scores as a radar series in canonical axis
// order. Axes missing from scores render as zero.
func RadarSeries(scores map[string]float64) []RadarPoint {
	points := make([]RadarPoint, len(Axes))
	for i, axis := range Axes {
		v := scores[axis]
		points[i] = RadarPoint{
			Axis:    axis,
			Value:   v,
			Percent: round1(v / 5 * 100),
		}
	}
	return points
}

// CanonicalRadar renders the prototype radar series for a persona code,
// or nil when the code is unknown. Codes are case-insensitive.
func CanonicalRadar(code string) []RadarPoint {
	p, ok := PersonaByCode(strings.ToUpper(strings.TrimSpace(code)))
	if !ok {
		return nil
	}
	return RadarSeries(p.AxisScores())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
