// Package taam implements the persona model used by the TAAM consumer
// survey: ten prototype personas scored across six behavioral axes, plus
// the answer-mapping and classification logic that turns raw survey rows
// into persona assignments.
package taam

// Axes lists the six behavioral axes in canonical order. Axis order is
// significant: prototype vectors, radar series, and heatmap rows all
// follow this ordering.
var Axes = []string{
	"Price",
	"Quality",
	"Ingredients",
	"Social Pressure",
	"Brand Image",
	"Convenience",
}

// Persona is one of the ten prototype shopper profiles. Vector holds the
// prototype's axis scores in Axes order, each on the 1-5 scale.
type Persona struct {
	Code   string
	Name   string
	Vector []float64
}

// Personas holds the ten prototypes in code order A through J.
var Personas = []Persona{
	{Code: "A", Name: "Seamless Shoppers", Vector: []float64{2.5, 3.25, 3.25, 2.5, 2.5, 5.0}},
	{Code: "B", Name: "Value Hunters", Vector: []float64{5.0, 1.5, 2.0, 1.0, 2.5, 2.5}},
	{Code: "C", Name: "Aspirational Splurgers", Vector: []float64{5.0, 2.5, 2.5, 5.0, 5.0, 1.0}},
	{Code: "D", Name: "Obligati", Vector: []float64{4.0, 3.5, 2.5, 5.0, 3.5, 2.5}},
	{Code: "E", Name: "Luxe Enthusiasts", Vector: []float64{2.5, 5.0, 5.0, 1.0, 4.0, 2.0}},
	{Code: "F", Name: "Dependables", Vector: []float64{4.0, 2.5, 1.0, 4.0, 5.0, 2.5}},
	{Code: "G", Name: "Sprezzatura", Vector: []float64{5.0, 3.0, 2.0, 3.25, 2.5, 2.5}},
	{Code: "H", Name: "Ascent Beautifiers", Vector: []float64{5.0, 5.0, 4.0, 2.0, 1.5, 3.25}},
	{Code: "I", Name: "Refined Connoisseurs", Vector: []float64{2.5, 5.0, 5.0, 1.0, 3.25, 2.0}},
	{Code: "J", Name: "Exotica Seekers", Vector: []float64{2.5, 2.0, 5.0, 1.0, 1.0, 1.0}},
}

// PersonaByCode looks up a prototype by its single-letter code.
func PersonaByCode(code string) (Persona, bool) {
	for _, p := range Personas {
		if p.Code == code {
			return p, true
		}
	}
	return Persona{}, false
}

// Codes returns the persona codes in canonical order.
func Codes() []string {
	codes := make([]string, len(Personas))
	for i, p := range Personas {
		codes[i] = p.Code
	}
	return codes
}

// AxisScores expands the prototype vector into an axis-keyed map.
func (p Persona) AxisScores() map[string]float64 {
	scores := make(map[string]float64, len(Axes))
	for i, axis := range Axes {
		scores[axis] = p.Vector[i]
	}
	return scores
}

// questionWeight ties a survey question to its contribution toward an
// axis score. Weights for an axis sum to 1.0 when every question is
// answered; scores renormalize over the answered subset otherwise.
type questionWeight struct {
	key    string
	weight float64
}

var axisWeights = map[string][]questionWeight{
	"Price": {
		{key: "q8", weight: 0.60},
		{key: "q9", weight: 0.40},
	},
	"Quality": {
		{key: "q10", weight: 0.70},
		{key: "q11", weight: 0.30},
	},
	"Ingredients": {
		{key: "q12", weight: 0.40},
		{key: "q13", weight: 0.60},
	},
	"Social Pressure": {
		{key: "q14", weight: 0.50},
		{key: "q15", weight: 0.30},
		{key: "q23", weight: 0.20},
	},
	"Brand Image": {
		{key: "q16", weight: 0.50},
		{key: "q17", weight: 0.30},
		{key: "q22", weight: 0.20},
	},
	"Convenience": {
		{key: "q18", weight: 0.60},
		{key: "q19", weight: 0.40},
	},
}
