package taam

import (
	"math"
	"regexp"
	"strings"
)

// Source records how a respondent's persona was determined.
type Source int

const (
	// SourceUnresolved means too few axes could be scored to classify.
	SourceUnresolved Source = iota
	// SourceAnchor means the respondent self-identified via the anchor
	// question (q20) and the prototype was taken at face value.
	SourceAnchor
	// SourceComputed means the persona was inferred from axis scores by
	// nearest-prototype similarity.
	SourceComputed
)

func (s Source) String() string {
	switch s {
	case SourceAnchor:
		return "anchor"
	case SourceComputed:
		return "computed"
	}
	return "unresolved"
}

// Result is the outcome of classifying one respondent. AxisScores holds
// the prototype vector when Source is SourceAnchor, otherwise whatever
// axes could be computed from the answers.
type Result struct {
	Code       string
	Name       string
	AxisScores map[string]float64
	Source     Source
}

// FromAnchor reports whether the persona came from the q20 anchor.
func (r Result) FromAnchor() bool {
	return r.Source == SourceAnchor
}

// Valid reports whether the result carries a resolved persona.
func (r Result) Valid() bool {
	return r.Name != "" && r.Name != "Unknown"
}

// minScoredAxes is the floor below which a respondent cannot be
// classified by similarity.
const minScoredAxes = 4

var (
	parenRe       = regexp.MustCompile(`\(([^)]+)\)`)
	letterTokenRe = regexp.MustCompile(`\b([a-j])\b`)
)

// AnchorCode extracts a persona code from a raw q20 answer. It tries,
// in order: a bare single letter, a parenthesized persona name, a
// persona name appearing anywhere in the text, and finally a standalone
// a-j token. The second return is false when nothing matches.
func AnchorCode(raw string) (string, bool) {
	text := normalizeText(raw)
	if text == "" {
		return "", false
	}
	if len(text) == 1 && text[0] >= 'a' && text[0] <= 'j' {
		return strings.ToUpper(text), true
	}
	if m := parenRe.FindStringSubmatch(text); m != nil {
		inner := normalizeText(m[1])
		for _, p := range Personas {
			if inner == strings.ToLower(p.Name) {
				return p.Code, true
			}
		}
	}
	for _, p := range Personas {
		if strings.Contains(text, strings.ToLower(p.Name)) {
			return p.Code, true
		}
	}
	if m := letterTokenRe.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1]), true
	}
	return "", false
}

// CosineSimilarity returns the cosine of the angle between two vectors,
// or 0 when the lengths differ or either vector has zero norm.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// NearestPrototype finds the prototype most similar to the given axis
// scores. Missing axes contribute 0. Ties keep the earlier persona in
// code order.
func NearestPrototype(scores map[string]float64) (code, name string, sim float64) {
	vec := make([]float64, len(Axes))
	for i, axis := range Axes {
		vec[i] = scores[axis]
	}
	best := -1.0
	for _, p := range Personas {
		s := CosineSimilarity(vec, p.Vector)
		if s > best {
			best = s
			code = p.Code
			name = p.Name
		}
	}
	return code, name, best
}

// Classify assigns a persona to one respondent record. A non-empty q20
// answer that resolves to a persona wins outright; otherwise the axes
// are scored and the nearest prototype is chosen, provided at least
// minScoredAxes axes could be computed.
func Classify(record map[string]string) Result {
	if raw, ok := record["q20"]; ok && strings.TrimSpace(raw) != "" {
		if code, ok := AnchorCode(raw); ok {
			p, _ := PersonaByCode(code)
			return Result{
				Code:       p.Code,
				Name:       p.Name,
				AxisScores: p.AxisScores(),
				Source:     SourceAnchor,
			}
		}
	}
	scores := AllAxes(record)
	if len(scores) < minScoredAxes {
		return Result{Name: "Unknown", AxisScores: scores, Source: SourceUnresolved}
	}
	code, name, _ := NearestPrototype(scores)
	return Result{Code: code, Name: name, AxisScores: scores, Source: SourceComputed}
}
