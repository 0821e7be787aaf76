package charts

import (
	"fmt"

	"github.com/akeleontechnologies/taam-app/internal/taam"
	"github.com/akeleontechnologies/taam-app/internal/tabular"
)

// RespondentPage is one page of per-respondent radar chart specs, with
// cursor fields for walking a large dataset.
type RespondentPage struct {
	Results    []ChartSpec `json:"results"`
	Count      int         `json:"count"`
	Next       bool        `json:"next"`
	Previous   bool        `json:"previous"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
}

// RespondentCharts builds radar specs for one page of respondents.
// Pages are 1-based; a page past the end returns an empty result list
// with the cursor fields still filled in.
func RespondentCharts(t *tabular.Table, page, pageSize int, opt Options) RespondentPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	records := t.Records()
	results := ClassifyAll(records, opt.Workers)

	count := len(records)
	totalPages := (count + pageSize - 1) / pageSize
	out := RespondentPage{
		Count:      count,
		Page:       page,
		TotalPages: totalPages,
		Next:       page < totalPages,
		Previous:   page > 1,
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > count {
		end = count
	}
	for i := start; i < end; i++ {
		out.Results = append(out.Results, respondentSpec(records[i], results[i], i, opt))
	}
	return out
}

// RespondentChart builds the radar spec for a single respondent index.
// The second return is false when the index is out of range.
func RespondentChart(t *tabular.Table, idx int, opt Options) (ChartSpec, bool) {
	records := t.Records()
	if idx < 0 || idx >= len(records) {
		return ChartSpec{}, false
	}
	return respondentSpec(records[idx], taam.Classify(records[idx]), idx, opt), true
}

// respondentSpec overlays one respondent's scored axes on their persona
// prototype. user_data is null when no axis could be scored and
// canonical_data is null when no persona resolved.
func respondentSpec(record map[string]string, res taam.Result, idx int, opt Options) ChartSpec {
	var userData []taam.RadarPoint
	if len(res.AxisScores) > 0 {
		userData = taam.RadarSeries(res.AxisScores)
	}
	return ChartSpec{
		UID:       fmt.Sprintf("respondent-%d", idx),
		OwnerID:   opt.OwnerID,
		DatasetID: opt.DatasetID,
		ChartType: "taam_radar",
		ChartConfig: map[string]any{
			"title":            fmt.Sprintf("Respondent %d - %s", idx+1, res.Name),
			"respondent_index": idx,
			"persona_code":     res.Code,
			"persona_name":     res.Name,
			"user_data":        userData,
			"canonical_data":   taam.CanonicalRadar(res.Code),
			"axes":             taam.Axes,
			"domain":           []float64{0, 5},
			"axis_scores":      res.AxisScores,
		},
		DerivedMetrics: map[string]any{
			"respondent_index": idx,
			"persona_code":     res.Code,
			"persona_name":     res.Name,
			"is_from_q20":      res.FromAnchor(),
			"axis_scores":      res.AxisScores,
			"survey_answers":   record,
		},
	}
}
