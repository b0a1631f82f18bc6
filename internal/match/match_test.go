package match

import (
	"reflect"
	"testing"
)

func TestNormalizeBareArray(t *testing.T) {
	raw := []byte(`[
		{"school": "Waterloo", "program": "Software Engineering", "overall": 0.91, "academic": 0.95, "campus": 0.8, "social": 0.7},
		{"school": "Toronto", "program": "Computer Science", "overall": 0.88, "academic": 0.9, "campus": 0.85, "social": 0.75}
	]`)

	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].School != "Waterloo" || got[0].Overall != 0.91 {
		t.Errorf("first match = %+v", got[0])
	}
}

func TestNormalizeWrappedObject(t *testing.T) {
	raw := []byte(`{"matches": [
		{"school": "Waterloo", "program": "Software Engineering", "overall": 0.91, "academic": 0.95, "campus": 0.8, "social": 0.7}
	]}`)

	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if len(got) != 1 || got[0].Program != "Software Engineering" {
		t.Errorf("matches = %+v", got)
	}
}

func TestNormalizeBothShapesAgree(t *testing.T) {
	bare := []byte(`[{"school": "A", "program": "B", "overall": 0.5, "academic": 0.4, "campus": 0.3, "social": 0.2}]`)
	wrapped := []byte(`{"matches": [{"school": "A", "program": "B", "overall": 0.5, "academic": 0.4, "campus": 0.3, "social": 0.2}]}`)

	a, err := Normalize(bare)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Normalize(wrapped)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("shapes normalize differently: %+v vs %+v", a, b)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	raw := []byte(`[
		{"school": "C", "program": "p", "overall": 0.1, "academic": 0, "campus": 0, "social": 0},
		{"school": "A", "program": "p", "overall": 0.9, "academic": 0, "campus": 0, "social": 0},
		{"school": "B", "program": "p", "overall": 0.5, "academic": 0, "campus": 0, "social": 0}
	]`)

	got, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	var schools []string
	for _, m := range got {
		schools = append(schools, m.School)
	}
	if !reflect.DeepEqual(schools, []string{"C", "A", "B"}) {
		t.Errorf("order = %v, want as received", schools)
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	if _, err := Normalize([]byte(`"nope"`)); err == nil {
		t.Error("expected error for non-array, non-object payload")
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.655, "66%"},
		{0.004, "0%"},
		{1.0, "100%"},
		{0.0, "0%"},
		{0.5, "50%"},
		{0.999, "100%"},
		{0.125, "13%"}, // half rounds up
	}
	for _, c := range cases {
		if got := Percent(c.in); got != c.want {
			t.Errorf("Percent(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
