package quiz

import (
	"github.com/linku/linku/internal/catalog"
)

// Visible reports whether a question's dependency is currently
// satisfied. Questions without a dependency are always visible.
func Visible(q *catalog.Question, answers AnswerSet) bool {
	if q.Dependency == nil {
		return true
	}
	a, ok := answers[q.Dependency.Question]
	if !ok {
		return false
	}
	return a.matches(q.Dependency.Value)
}

// VisibleQuestions derives the active questionnaire: all catalog
// questions in original order whose dependencies are satisfied by the
// current answers. Pure; callers re-invoke it after every mutation
// instead of caching, since editing an upstream answer can make
// questions appear or disappear.
func VisibleQuestions(c *catalog.Catalog, answers AnswerSet) []catalog.Question {
	var out []catalog.Question
	for _, s := range c.Sections {
		for i := range s.Questions {
			if Visible(&s.Questions[i], answers) {
				out = append(out, s.Questions[i])
			}
		}
	}
	return out
}

// VisibleInSection is VisibleQuestions restricted to one section.
func VisibleInSection(s catalog.Section, answers AnswerSet) []catalog.Question {
	var out []catalog.Question
	for i := range s.Questions {
		if Visible(&s.Questions[i], answers) {
			out = append(out, s.Questions[i])
		}
	}
	return out
}

// IsComplete reports whether every visible question is answered.
// Answers recorded for hidden questions do not count either way.
func IsComplete(c *catalog.Catalog, answers AnswerSet) bool {
	for _, q := range VisibleQuestions(c, answers) {
		if !answers.IsAnswered(q.ID) {
			return false
		}
	}
	return true
}
