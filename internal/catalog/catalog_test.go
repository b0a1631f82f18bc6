package catalog

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(c.Sections) != 3 {
		t.Errorf("sections = %d, want 3", len(c.Sections))
	}
	if len(c.Questions()) == 0 {
		t.Fatal("catalog has no questions")
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	b, _ := Load()
	if a != b {
		t.Error("Load() returned different catalog instances")
	}
}

func TestQuestionsPreserveCatalogOrder(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	qs := c.Questions()
	i := 0
	for _, s := range c.Sections {
		for _, q := range s.Questions {
			if qs[i].ID != q.ID {
				t.Fatalf("Questions()[%d] = %q, want %q", i, qs[i].ID, q.ID)
			}
			i++
		}
	}
}

func TestByID(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	q := c.ByID("AA")
	if q == nil {
		t.Fatal("ByID(AA) = nil")
	}
	if q.Kind != KindMulti {
		t.Errorf("AA kind = %q, want multi", q.Kind)
	}
	if q.MaxSelections != 3 {
		t.Errorf("AA maxSelections = %d, want 3", q.MaxSelections)
	}

	if c.ByID("nope") != nil {
		t.Error("ByID(nope) should be nil")
	}
}

func TestDependencyReferencesEarlierQuestion(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	alt := c.ByID("ALT")
	if alt == nil || alt.Dependency == nil {
		t.Fatal("ALT should carry a dependency")
	}
	if alt.Dependency.Question != "ENG" {
		t.Errorf("ALT depends on %q, want ENG", alt.Dependency.Question)
	}

	// ENG must appear before ALT in flat order.
	engIdx, altIdx := -1, -1
	for i, q := range c.Questions() {
		switch q.ID {
		case "ENG":
			engIdx = i
		case "ALT":
			altIdx = i
		}
	}
	if engIdx < 0 || altIdx < 0 || engIdx >= altIdx {
		t.Errorf("ENG index %d should precede ALT index %d", engIdx, altIdx)
	}
}

func TestParseRejectsForwardDependency(t *testing.T) {
	raw := `{
		"title": "t",
		"sections": [{
			"id": "s", "title": "S",
			"questions": [
				{"id": "B", "question": "b?", "type": "single",
				 "conditional": {"dependsOn": "A", "requiredValue": "x"},
				 "options": [
					{"id": "o1", "label": "1", "value": "1"},
					{"id": "o2", "label": "2", "value": "2"}
				 ]},
				{"id": "A", "question": "a?", "type": "single",
				 "options": [
					{"id": "o3", "label": "x", "value": "x"},
					{"id": "o4", "label": "y", "value": "y"}
				 ]}
			]
		}]
	}`

	_, err := parse([]byte(raw))
	if err == nil {
		t.Fatal("expected forward dependency to be rejected")
	}
	if !strings.Contains(err.Error(), "earlier") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseRejectsDuplicateOptionValues(t *testing.T) {
	raw := `{
		"title": "t",
		"sections": [{
			"id": "s", "title": "S",
			"questions": [
				{"id": "A", "question": "a?", "type": "single",
				 "options": [
					{"id": "o1", "label": "x", "value": "same"},
					{"id": "o2", "label": "y", "value": "same"}
				 ]}
			]
		}]
	}`

	_, err := parse([]byte(raw))
	if err == nil {
		t.Fatal("expected duplicate option values to be rejected")
	}
}

func TestParseRejectsZeroMaxSelections(t *testing.T) {
	raw := `{
		"title": "t",
		"sections": [{
			"id": "s", "title": "S",
			"questions": [
				{"id": "A", "question": "a?", "type": "multi",
				 "maxSelections": 0,
				 "options": [{"id": "o1", "label": "x", "value": "x"}]}
			]
		}]
	}`

	_, err := parse([]byte(raw))
	if err == nil {
		t.Fatal("expected maxSelections 0 to be rejected")
	}
}
