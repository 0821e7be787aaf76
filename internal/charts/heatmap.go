package charts

import "github.com/akeleontechnologies/taam-app/internal/taam"

// CanonicalHeatmap returns the prototype axis scores for all ten
// personas, keyed by persona name.
func CanonicalHeatmap() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(taam.Personas))
	for _, p := range taam.Personas {
		out[p.Name] = p.AxisScores()
	}
	return out
}

// ObservedHeatmap averages computed axis scores per persona over the
// classified rows. Rows without scores contribute nothing and personas
// with no members are omitted, so the result can be sparser than the
// canonical map.
func ObservedHeatmap(results []taam.Result) map[string]map[string]float64 {
	type acc struct {
		sum map[string]float64
		cnt map[string]int
	}
	accs := map[string]*acc{}
	for _, r := range results {
		if !r.Valid() || len(r.AxisScores) == 0 {
			continue
		}
		a := accs[r.Name]
		if a == nil {
			a = &acc{sum: map[string]float64{}, cnt: map[string]int{}}
			accs[r.Name] = a
		}
		for axis, v := range r.AxisScores {
			a.sum[axis] += v
			a.cnt[axis]++
		}
	}
	out := make(map[string]map[string]float64, len(accs))
	for name, a := range accs {
		row := make(map[string]float64, len(a.sum))
		for axis, s := range a.sum {
			row[axis] = round2(s / float64(a.cnt[axis]))
		}
		out[name] = row
	}
	return out
}
