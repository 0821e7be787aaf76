package charts

import (
	"math"

	"github.com/akeleontechnologies/taam-app/internal/taam"
)

// Entry is one persona bucket of a distribution.
type Entry struct {
	Persona     string  `json:"persona"`
	PersonaCode string  `json:"persona_code"`
	Count       int     `json:"count"`
	Percent     float64 `json:"percent"`
}

// DistributionResult summarizes persona membership over a dataset.
// TotalRespondents counts only rows that resolved to a persona.
type DistributionResult struct {
	Distribution     []Entry `json:"distribution"`
	TotalRespondents int     `json:"total_respondents"`
}

// Distribution tallies classification results into the ten persona
// buckets, always emitting all ten in code order. Unresolved rows are
// excluded from the total.
func Distribution(results []taam.Result) DistributionResult {
	counts := make(map[string]int, len(taam.Personas))
	total := 0
	for _, r := range results {
		if !r.Valid() {
			continue
		}
		counts[r.Code]++
		total++
	}
	out := DistributionResult{TotalRespondents: total}
	for _, p := range taam.Personas {
		pct := 0.0
		if total > 0 {
			pct = round2(float64(counts[p.Code]) * 100 / float64(total))
		}
		out.Distribution = append(out.Distribution, Entry{
			Persona:     p.Name,
			PersonaCode: p.Code,
			Count:       counts[p.Code],
			Percent:     pct,
		})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
