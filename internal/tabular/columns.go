package tabular

import (
	"fmt"
	"strings"
)

// columnMapping lists the header spellings seen across survey exports
// for one canonical key. Mapping order decides ties: the first key with
// a matching variant wins.
type columnMapping struct {
	key      string
	variants []string
}

var columnMappings = []columnMapping{
	{"q8", []string{"Q8", "q8", "Question 8", "question_8", "price_importance", "Q8_Price Importance"}},
	{"q9", []string{"Q9", "q9", "Question 9", "question_9", "discount_seeking", "Q9_Seek Discounts"}},
	{"q10", []string{"Q10", "q10", "Question 10", "question_10", "quality_importance", "Q10_Quality Influence"}},
	{"q11", []string{"Q11", "q11", "Question 11", "question_11", "pay_more", "Q11_Pay More For Quality"}},
	{"q12", []string{"Q12", "q12", "Question 12", "question_12", "ingredients_attention", "Q12_Ingredient Attention"}},
	{"q13", []string{"Q13", "q13", "Question 13", "question_13", "specific_ingredients", "Q13_Drawn To Specific Ingredients"}},
	{"q14", []string{"Q14", "q14", "Question 14", "question_14", "recommendations", "Q14_Social Recommendation Effect"}},
	{"q15", []string{"Q15", "q15", "Question 15", "question_15", "social_expectations", "Q15_Align With Expectations"}},
	{"q16", []string{"Q16", "q16", "Question 16", "question_16", "brand_importance", "Q16_Brand Image Importance"}},
	{"q17", []string{"Q17", "q17", "Question 17", "question_17", "brand_loyalty", "Q17_Prefer Trusted Brands"}},
	{"q18", []string{"Q18", "q18", "Question 18", "question_18", "convenience_importance", "Q18_Convenience Importance"}},
	{"q19", []string{"Q19", "q19", "Question 19", "question_19", "online_preference", "Q19_Prefer Online Shopping"}},
	{"q20", []string{"Q20", "q20", "Question 20", "question_20", "persona", "persona_anchor", "shopping_style", "Q20_Shopping Style Persona Anchor"}},
	{"q21", []string{"Q21", "q21", "Question 21", "question_21", "income_reaction", "Q21_Reaction To Income Increase"}},
	{"q22", []string{"Q22", "q22", "Question 22", "question_22", "new_launches", "Q22_Reaction To New Launches"}},
	{"q23", []string{"Q23", "q23", "Question 23", "question_23", "influencer", "Q23_Influencer Purchase Likelihood"}},
	{"emirate", []string{"Emirate", "emirate", "location", "region", "Q1_Emirate"}},
	{"gender", []string{"Gender", "gender", "sex", "Q3_Gender"}},
	{"age", []string{"Age", "age", "age_group", "Q2_Age Group"}},
}

// NormalizeHeader lowercases a header and collapses runs of whitespace
// and hyphens to a single underscore.
func NormalizeHeader(raw string) string {
	var b strings.Builder
	sep := false
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch r {
		case ' ', '\t', '\n', '\r', '-':
			if !sep {
				b.WriteByte('_')
				sep = true
			}
		default:
			b.WriteRune(r)
			sep = false
		}
	}
	return b.String()
}

// CanonicalKey maps a raw header to its canonical key. Exact matches on
// the normalized form beat substring matches; within a pass the first
// mapping in declaration order wins. The second return is false when no
// mapping applies.
func CanonicalKey(raw string) (string, bool) {
	norm := NormalizeHeader(raw)
	if norm == "" {
		return "", false
	}
	for _, m := range columnMappings {
		for _, v := range m.variants {
			if norm == strings.ToLower(v) {
				return m.key, true
			}
		}
	}
	for _, m := range columnMappings {
		for _, v := range m.variants {
			lv := strings.ToLower(v)
			if strings.Contains(norm, lv) || strings.Contains(lv, norm) {
				return m.key, true
			}
		}
	}
	return "", false
}

// CanonicalizeHeaders maps every raw header, keeping the normalized
// form for headers with no mapping. Duplicates get a numeric suffix so
// record keys stay unambiguous.
func CanonicalizeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		name, ok := CanonicalKey(h)
		if !ok {
			name = NormalizeHeader(h)
		}
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		out[i] = name
	}
	return out
}

// coreQuestions are the keys whose presence marks a dataset as a TAAM
// survey export. The anchor (q20) and demographics are deliberately not
// part of the check.
var coreQuestions = []string{"q8", "q9", "q10", "q11", "q12", "q13", "q14", "q16", "q18", "q19"}

const minCoreQuestions = 8

// IsSurvey reports whether the columns cover enough core survey
// questions to run persona classification.
func IsSurvey(columns []string) bool {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[strings.ToLower(c)] = true
	}
	n := 0
	for _, q := range coreQuestions {
		if present[q] {
			n++
		}
	}
	return n >= minCoreQuestions
}
