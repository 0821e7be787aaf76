package charts

import (
	"sort"
	"strings"

	"github.com/akeleontechnologies/taam-app/internal/tabular"
)

// Filters narrows a dataset by demographic values before computing a
// persona distribution. Empty fields are ignored.
type Filters struct {
	Age     string
	Gender  string
	Emirate string
}

// FilterOptions lists the distinct demographic values present in a
// dataset, for building filter UIs.
type FilterOptions struct {
	AgeGroups []string `json:"age_groups"`
	Genders   []string `json:"genders"`
	Emirates  []string `json:"emirates"`
}

// ListFilterOptions collects sorted distinct non-blank values for each
// demographic column. Missing columns yield empty lists.
func ListFilterOptions(t *tabular.Table) FilterOptions {
	return FilterOptions{
		AgeGroups: distinctValues(t, "age"),
		Genders:   distinctValues(t, "gender"),
		Emirates:  distinctValues(t, "emirate"),
	}
}

func distinctValues(t *tabular.Table, key string) []string {
	col := findColumn(t, key)
	if col < 0 {
		return []string{}
	}
	seen := map[string]struct{}{}
	for _, row := range t.Rows {
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// findColumn returns the first column whose name contains the key.
func findColumn(t *tabular.Table, key string) int {
	for i, c := range t.Columns {
		if strings.Contains(strings.ToLower(c), key) {
			return i
		}
	}
	return -1
}

// FilteredEntry is one persona bucket of a filtered distribution.
type FilteredEntry struct {
	Persona     string  `json:"persona"`
	PersonaCode string  `json:"persona_code"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

// FilteredDistribution is a persona distribution over the subset of
// rows matching the demographic filters. TotalRespondents counts all
// rows before filtering; FilteredRespondents counts the classified
// rows after it.
type FilteredDistribution struct {
	TotalRespondents    int               `json:"total_respondents"`
	FilteredRespondents int               `json:"filtered_respondents"`
	Distribution        []FilteredEntry   `json:"distribution"`
	FiltersApplied      map[string]string `json:"filters_applied"`
}

// FilterDistribution applies demographic filters with exact value
// equality, classifies the remaining rows, and tallies personas. A
// filter whose column is absent from the dataset is skipped and left
// out of FiltersApplied.
func FilterDistribution(t *tabular.Table, f Filters, opt Options) FilteredDistribution {
	out := FilteredDistribution{
		TotalRespondents: len(t.Rows),
		FiltersApplied:   map[string]string{},
	}
	rows := t.Rows
	steps := []struct {
		key, label, value string
	}{
		{"age", "age_group", f.Age},
		{"gender", "gender", f.Gender},
		{"emirate", "emirate", f.Emirate},
	}
	for _, step := range steps {
		if step.value == "" {
			continue
		}
		col := findColumn(t, step.key)
		if col < 0 {
			continue
		}
		out.FiltersApplied[step.label] = step.value
		kept := rows[:0:0]
		for _, row := range rows {
			if row[col] == step.value {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	sub := &tabular.Table{Name: t.Name, Columns: t.Columns, Rows: rows}
	results := ClassifyAll(sub.Records(), opt.Workers)
	dist := Distribution(results)
	out.FilteredRespondents = dist.TotalRespondents
	for _, e := range dist.Distribution {
		out.Distribution = append(out.Distribution, FilteredEntry{
			Persona:     e.Persona,
			PersonaCode: e.PersonaCode,
			Count:       e.Count,
			Percentage:  e.Percent,
		})
	}
	return out
}
