package quiz

import (
	"github.com/linku/linku/internal/catalog"
)

// AnswerSet maps question ids to recorded answers. Answers for
// questions hidden by a dependency change are retained, so a learner
// who flips the dependency back does not lose work; visibility and
// completion checks simply skip them.
type AnswerSet map[string]Answer

// NewAnswerSet creates an empty answer set for a quiz session.
func NewAnswerSet() AnswerSet {
	return make(AnswerSet)
}

// Toggle flips an option in a multi-choice answer. Removing a selected
// value always succeeds; adding one past the question's selection cap
// is silently dropped — the cap is a capacity guard, not an error.
func (as AnswerSet) Toggle(q *catalog.Question, value string) {
	if q.Kind != catalog.KindMulti {
		return
	}

	a := as[q.ID]
	a.Kind = catalog.KindMulti

	for i, v := range a.Selections {
		if v == value {
			a.Selections = append(a.Selections[:i], a.Selections[i+1:]...)
			as[q.ID] = a
			return
		}
	}

	if len(a.Selections) >= q.MaxSelections {
		return
	}
	a.Selections = append(a.Selections, value)
	as[q.ID] = a
}

// SetChoice replaces the answer for a single-choice or scale question.
func (as AnswerSet) SetChoice(q *catalog.Question, value string) {
	if q.Kind != catalog.KindSingle && q.Kind != catalog.KindScale {
		return
	}
	as[q.ID] = Answer{Kind: q.Kind, Choice: value}
}

// SetNumber replaces the answer for a number question. The store does
// not clamp; range checks belong to the caller.
func (as AnswerSet) SetNumber(q *catalog.Question, v float64) {
	if q.Kind != catalog.KindNumber {
		return
	}
	as[q.ID] = Answer{Kind: catalog.KindNumber, Number: v}
}

// Remove deletes any recorded answer for the question.
func (as AnswerSet) Remove(questionID string) {
	delete(as, questionID)
}

// IsAnswered reports whether the question has a valid answer recorded.
func (as AnswerSet) IsAnswered(questionID string) bool {
	a, ok := as[questionID]
	return ok && a.Answered()
}

// Selected reports whether value is currently selected for a
// multi-choice question.
func (as AnswerSet) Selected(questionID, value string) bool {
	a, ok := as[questionID]
	if !ok {
		return false
	}
	for _, v := range a.Selections {
		if v == value {
			return true
		}
	}
	return false
}

// SelectionCount returns how many options are selected for a
// multi-choice question.
func (as AnswerSet) SelectionCount(questionID string) int {
	return len(as[questionID].Selections)
}

// FromPayload rebuilds an answer set from a persisted payload map.
// Entries whose question is no longer in the catalog, or whose shape
// does not match the question kind, are dropped.
func FromPayload(cat *catalog.Catalog, payload map[string]any) AnswerSet {
	as := NewAnswerSet()
	for id, v := range payload {
		q := cat.ByID(id)
		if q == nil {
			continue
		}
		switch q.Kind {
		case catalog.KindMulti:
			for _, s := range anyStrings(v) {
				as.Toggle(q, s)
			}
		case catalog.KindSingle, catalog.KindScale:
			if s, ok := v.(string); ok {
				as.SetChoice(q, s)
			}
		case catalog.KindNumber:
			if f, ok := v.(float64); ok {
				as.SetNumber(q, f)
			}
		}
	}
	return as
}

// anyStrings coerces a persisted selection list, which decodes as
// []any after a JSON round trip, back to strings.
func anyStrings(v any) []string {
	switch vs := v.(type) {
	case []string:
		return vs
	case []any:
		out := make([]string, 0, len(vs))
		for _, e := range vs {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Payload serializes the full answer set, including answers retained
// for currently hidden questions, to the scoring service's wire map.
func (as AnswerSet) Payload() map[string]any {
	out := make(map[string]any, len(as))
	for id, a := range as {
		out[id] = a.Value()
	}
	return out
}
