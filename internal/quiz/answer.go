package quiz

import (
	"math"
	"strconv"

	"github.com/linku/linku/internal/catalog"
)

// Answer is one recorded response, tagged by the question kind that
// produced it. Exactly one payload field is meaningful per kind:
// Selections for multi, Choice for single/scale, Number for number.
type Answer struct {
	Kind       catalog.Kind
	Selections []string
	Choice     string
	Number     float64
}

// Value returns the wire representation of the answer.
func (a Answer) Value() any {
	switch a.Kind {
	case catalog.KindMulti:
		return a.Selections
	case catalog.KindNumber:
		return a.Number
	default:
		return a.Choice
	}
}

// Answered reports whether the answer counts as given for its kind.
func (a Answer) Answered() bool {
	switch a.Kind {
	case catalog.KindMulti:
		return len(a.Selections) > 0
	case catalog.KindNumber:
		return !math.IsNaN(a.Number) && !math.IsInf(a.Number, 0)
	default:
		return a.Choice != ""
	}
}

// matches reports whether the answer satisfies a dependency's required
// value. Multi answers match when the value is among the selections;
// everything else compares the string form.
func (a Answer) matches(required string) bool {
	switch a.Kind {
	case catalog.KindMulti:
		for _, v := range a.Selections {
			if v == required {
				return true
			}
		}
		return false
	case catalog.KindNumber:
		return strconv.FormatFloat(a.Number, 'f', -1, 64) == required
	default:
		return a.Choice == required
	}
}
