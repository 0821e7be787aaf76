package charts_test

import (
	"reflect"
	"testing"

	"github.com/akeleontechnologies/taam-app/internal/charts"
	"github.com/akeleontechnologies/taam-app/internal/taam"
)

// sampleRecords covers every classification path: anchored by letter,
// computed from answers, unresolved, and anchored by persona name.
func sampleRecords() []map[string]string {
	return []map[string]string{
		{"q20": "E"},
		{
			"q8": "2", "q9": "3", "q10": "2", "q11": "2", "q12": "5", "q13": "5",
			"q14": "1", "q15": "1", "q23": "1", "q16": "1", "q17": "1", "q22": "1",
			"q18": "1", "q19": "1",
		},
		{"q8": "5"},
		{"q20": "value hunters"},
	}
}

func TestDistribution(t *testing.T) {
	results := charts.ClassifyAll(sampleRecords(), 1)
	dist := charts.Distribution(results)

	if len(dist.Distribution) != 10 {
		t.Fatalf("buckets = %d, want 10", len(dist.Distribution))
	}
	if dist.TotalRespondents != 3 {
		t.Fatalf("total = %d, want 3 (unresolved row excluded)", dist.TotalRespondents)
	}
	for i, e := range dist.Distribution {
		if e.PersonaCode != taam.Personas[i].Code {
			t.Fatalf("bucket %d code = %s, want %s", i, e.PersonaCode, taam.Personas[i].Code)
		}
	}
	byCode := map[string]charts.Entry{}
	sum := 0
	for _, e := range dist.Distribution {
		byCode[e.PersonaCode] = e
		sum += e.Count
	}
	if sum != dist.TotalRespondents {
		t.Fatalf("counts sum to %d, total is %d", sum, dist.TotalRespondents)
	}
	for _, code := range []string{"B", "E", "J"} {
		if byCode[code].Count != 1 || byCode[code].Percent != 33.33 {
			t.Fatalf("%s = %+v, want count 1 percent 33.33", code, byCode[code])
		}
	}
	if byCode["A"].Count != 0 || byCode["A"].Percent != 0 {
		t.Fatalf("A = %+v, want empty bucket", byCode["A"])
	}
}

func TestDistributionEmpty(t *testing.T) {
	dist := charts.Distribution(nil)
	if dist.TotalRespondents != 0 || len(dist.Distribution) != 10 {
		t.Fatalf("empty distribution = %+v", dist)
	}
	for _, e := range dist.Distribution {
		if e.Count != 0 || e.Percent != 0 {
			t.Fatalf("bucket %s = %+v, want zeros", e.PersonaCode, e)
		}
	}
}

func TestClassifyAllShardingMatchesSequential(t *testing.T) {
	base := sampleRecords()
	records := make([]map[string]string, 0, 103)
	for i := 0; i < 103; i++ {
		records = append(records, base[i%len(base)])
	}
	want := charts.ClassifyAll(records, 1)
	for _, workers := range []int{0, 3, 16, 200} {
		got := charts.ClassifyAll(records, workers)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("workers=%d: sharded results differ from sequential", workers)
		}
	}
}

func TestClassifyAllEmpty(t *testing.T) {
	if got := charts.ClassifyAll(nil, 8); len(got) != 0 {
		t.Fatalf("empty input produced %d results", len(got))
	}
}
