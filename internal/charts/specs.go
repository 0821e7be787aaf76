package charts

import (
	"github.com/google/uuid"

	"github.com/akeleontechnologies/taam-app/internal/taam"
	"github.com/akeleontechnologies/taam-app/internal/tabular"
)

// ChartSpec is a renderer-agnostic chart description. ChartConfig holds
// everything a frontend needs to draw the chart; DerivedMetrics carries
// the numbers behind it for report text.
type ChartSpec struct {
	UID            string         `json:"uid,omitempty"`
	OwnerID        string         `json:"owner_id"`
	DatasetID      string         `json:"dataset_id"`
	ChartType      string         `json:"chart_type"`
	IsCanonical    bool           `json:"is_canonical"`
	ChartConfig    map[string]any `json:"chart_config"`
	DerivedMetrics map[string]any `json:"derived_metrics"`
}

// Options controls spec generation.
type Options struct {
	// Workers is the number of classification goroutines.
	Workers int
	// OwnerID and DatasetID are stamped into every generated spec.
	OwnerID   string
	DatasetID string
	// IncludeObserved adds a heatmap of observed averages next to the
	// canonical one.
	IncludeObserved bool
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{Workers: 4, OwnerID: "local"}
}

// SurveySpecs builds the standard chart bundle for a survey dataset: a
// persona distribution plus the canonical prototype heatmap, and
// optionally a heatmap of observed averages.
func SurveySpecs(t *tabular.Table, opt Options) []ChartSpec {
	results := ClassifyAll(t.Records(), opt.Workers)
	dist := Distribution(results)

	breakdown := make(map[string]any, len(dist.Distribution))
	unique := 0
	for _, e := range dist.Distribution {
		breakdown[e.Persona] = map[string]any{
			"count":      e.Count,
			"percentage": e.Percent,
		}
		if e.Count > 0 {
			unique++
		}
	}
	specs := []ChartSpec{{
		UID:       uuid.NewString(),
		OwnerID:   opt.OwnerID,
		DatasetID: opt.DatasetID,
		ChartType: "persona_distribution",
		ChartConfig: map[string]any{
			"title":          "Persona Distribution - All Respondents",
			"data":           dist.Distribution,
			"value_field":    "count",
			"category_field": "persona",
			"order":          taam.Codes(),
		},
		DerivedMetrics: map[string]any{
			"total_respondents":     dist.TotalRespondents,
			"persona_distribution":  breakdown,
			"unique_personas_found": unique,
		},
	}}

	specs = append(specs, ChartSpec{
		UID:         uuid.NewString(),
		OwnerID:     opt.OwnerID,
		DatasetID:   opt.DatasetID,
		ChartType:   "heatmap_canonical",
		IsCanonical: true,
		ChartConfig: map[string]any{
			"title": "TAAM Persona Profiles (Canonical)",
			"data":  CanonicalHeatmap(),
			"axes":  taam.Axes,
			"order": personaNames(),
		},
		DerivedMetrics: map[string]any{
			"heatmap_type": "canonical",
		},
	})

	if opt.IncludeObserved {
		specs = append(specs, ChartSpec{
			UID:       uuid.NewString(),
			OwnerID:   opt.OwnerID,
			DatasetID: opt.DatasetID,
			ChartType: "heatmap_observed",
			ChartConfig: map[string]any{
				"title": "TAAM Persona Profiles (Observed)",
				"data":  ObservedHeatmap(results),
				"axes":  taam.Axes,
				"order": personaNames(),
			},
			DerivedMetrics: map[string]any{
				"heatmap_type": "observed",
			},
		})
	}
	return specs
}

// GenericSpecs builds a single suggested chart for a non-survey
// dataset, with column profiling attached for the caller.
func GenericSpecs(t *tabular.Table, opt Options) []ChartSpec {
	p := t.Profile()
	suggested := InferChartType(p)
	return []ChartSpec{{
		UID:       uuid.NewString(),
		OwnerID:   opt.OwnerID,
		DatasetID: opt.DatasetID,
		ChartType: suggested,
		ChartConfig: map[string]any{
			"title":          "Data Visualization",
			"suggested_type": suggested,
			"columns":        t.Columns,
			"row_count":      p.RowCount,
		},
		DerivedMetrics: map[string]any{
			"profiling": map[string]any{
				"numeric_columns":     p.NumericColumns(),
				"categorical_columns": p.CategoricalColumns(),
			},
		},
	}}
}

// InferChartType picks a default chart for a non-survey dataset from
// its column profile.
func InferChartType(p *tabular.Profile) string {
	numeric := p.NumericColumns()
	categorical := p.CategoricalColumns()
	switch {
	case len(numeric) >= 2:
		return "scatter"
	case len(numeric) >= 1 && len(categorical) >= 1:
		return "bar"
	case len(categorical) >= 1:
		// pie charts only stay readable for a handful of slices
		for _, c := range p.Columns {
			if c.Name == categorical[0] {
				if c.UniqueCount <= 10 {
					return "pie"
				}
				break
			}
		}
	}
	return "bar"
}

func personaNames() []string {
	names := make([]string, len(taam.Personas))
	for i, p := range taam.Personas {
		names[i] = p.Name
	}
	return names
}
