package tabular

import (
	"reflect"
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Price - Importance  ", "price_importance"},
		{"Q8_Price Importance", "q8_price_importance"},
		{"Age Group", "age_group"},
		{"gender", "gender"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeHeader(c.in); got != c.want {
			t.Fatalf("NormalizeHeader(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCanonicalKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Q8", "q8", true},
		{"question_8", "q8", true},
		{"Question 8", "q8", true},
		{"Q8_Price Importance", "q8", true},
		{"Q10_Quality Influence", "q10", true},
		{"shopping_style", "q20", true},
		{"persona", "q20", true},
		{"Q1_Emirate", "emirate", true},
		{"Region", "emirate", true},
		{"Sex", "gender", true},
		{"Q2_Age Group", "age", true},
		{"message", "age", true}, // substring match through "age"
		{"favorite_color", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := CanonicalKey(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("CanonicalKey(%q) = %q %v, want %q %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestCanonicalizeHeadersDedup(t *testing.T) {
	got := CanonicalizeHeaders([]string{"Q8", "Question 8", "favorite color", ""})
	want := []string{"q8", "q8_2", "favorite_color", "column_4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("headers = %v, want %v", got, want)
	}
}

func TestIsSurvey(t *testing.T) {
	full := []string{"q8", "q9", "q10", "q11", "q12", "q13", "q14", "q16", "q18", "q19"}
	if !IsSurvey(full) {
		t.Fatal("all core questions: want survey")
	}
	if !IsSurvey(full[:8]) {
		t.Fatal("exactly eight core questions: want survey")
	}
	if IsSurvey(full[:7]) {
		t.Fatal("seven core questions: want not survey")
	}
	if IsSurvey([]string{"name", "age", "gender", "emirate"}) {
		t.Fatal("demographics only: want not survey")
	}
}
