package taam

import (
	"strconv"
	"strings"
)

// scaleEntry maps one answer label to its 1-5 score. Entries are kept in
// declaration order so that substring matching resolves to the first
// declared label, mirroring the survey codebook.
type scaleEntry struct {
	label string
	value int
}

type scale []scaleEntry

// importanceScale covers the "how important is X to you" questions
// (q8, q10, q12, q14, q16, q18).
var importanceScale = scale{
	{"not at all", 1},
	{"not at all important", 1},
	{"slightly", 2},
	{"slightly important", 2},
	{"moderately", 3},
	{"moderately important", 3},
	{"neutral", 3},
	{"very much", 4},
	{"very", 4},
	{"very important", 4},
	{"completely", 5},
	{"extremely important", 5},
	{"1", 1},
	{"2", 2},
	{"3", 3},
	{"4", 4},
	{"5", 5},
}

// frequencyScale covers the "how often" questions (q9, q17, q19).
var frequencyScale = scale{
	{"never", 1},
	{"rarely", 2},
	{"sometimes", 3},
	{"often", 4},
	{"always", 5},
	{"1", 1},
	{"2", 2},
	{"3", 3},
	{"4", 4},
	{"5", 5},
}

// payMoreScale covers q11 (willingness to pay more for quality). The
// bare frequency words land on slightly different values than in
// frequencyScale; that skew comes straight from the survey codebook.
var payMoreScale = scale{
	{"no, never", 1},
	{"no, not often", 2},
	{"neutral", 3},
	{"yes, sometimes", 4},
	{"yes, always", 5},
	{"never", 1},
	{"rarely", 2},
	{"sometimes", 4},
	{"often", 4},
	{"always", 5},
	{"1", 1},
	{"2", 2},
	{"3", 3},
	{"4", 4},
	{"5", 5},
}

// launchBehaviorScale covers q22 (reaction to new product launches).
// The codebook has no value 4 for this question.
var launchBehaviorScale = scale{
	{"i rarely pay attention to new launches.", 1},
	{"rarely", 1},
	{"i only buy if the product is aligned with my preferences and budget.", 2},
	{"only if aligned", 2},
	{"i wait for reviews before making a purchase.", 3},
	{"wait for reviews", 3},
	{"i get excited and want to try them immediately.", 5},
	{"try immediately", 5},
	{"1", 1},
	{"2", 2},
	{"3", 3},
	{"5", 5},
}

// influencerScale covers q23 (likelihood of influencer-driven purchase).
var influencerScale = scale{
	{"not likely", 1},
	{"slightly likely", 2},
	{"moderately likely", 3},
	{"very likely", 4},
	{"extremely likely", 5},
	{"1", 1},
	{"2", 2},
	{"3", 3},
	{"4", 4},
	{"5", 5},
}

// incomeReactionScale covers q21 (spending reaction to an income
// increase). Only 1, 3, and 5 are defined.
var incomeReactionScale = scale{
	{"save most", 1},
	{"save", 1},
	{"slight increase", 3},
	{"spend more luxury", 5},
	{"spend luxury", 5},
	{"1", 1},
	{"3", 3},
	{"5", 5},
}

// scaleForQuestion returns the answer scale for a question key, or nil
// for questions that accept only numeric answers (q13, q15).
func scaleForQuestion(key string) scale {
	switch key {
	case "q8", "q10", "q12", "q14", "q16", "q18":
		return importanceScale
	case "q9", "q17", "q19":
		return frequencyScale
	case "q11":
		return payMoreScale
	case "q22":
		return launchBehaviorScale
	case "q23":
		return influencerScale
	case "q21":
		return incomeReactionScale
	}
	return nil
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MapAnswer converts a raw answer for the given question into its 1-5
// score. Matching runs in three stages: exact label match, then
// bidirectional substring match (first declared label wins), then a
// numeric parse accepted when the value falls in [1, 5]. The second
// return is false when the answer cannot be mapped.
func MapAnswer(questionKey, answer string) (float64, bool) {
	text := normalizeText(answer)
	if text == "" {
		return 0, false
	}
	sc := scaleForQuestion(questionKey)
	if sc == nil {
		return parseInRange(text)
	}
	for _, e := range sc {
		if text == e.label {
			return float64(e.value), true
		}
	}
	for _, e := range sc {
		if strings.Contains(text, e.label) || strings.Contains(e.label, text) {
			return float64(e.value), true
		}
	}
	return parseInRange(text)
}

func parseInRange(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v < 1 || v > 5 {
		return 0, false
	}
	return v, true
}
