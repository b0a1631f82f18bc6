package catalog

// Kind identifies how a question is asked and answered.
type Kind string

const (
	// KindSingle is a radio-style question with exactly one choice.
	KindSingle Kind = "single"
	// KindMulti is a checkbox-style question capped by MaxSelections.
	KindMulti Kind = "multi"
	// KindScale is a bipolar likert question; options are the scale points.
	KindScale Kind = "scale"
	// KindNumber is a free numeric input.
	KindNumber Kind = "number"
)

// Option is one selectable choice within a question.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dependency gates a question on an earlier question's answer.
type Dependency struct {
	Question string `json:"dependsOn"`
	Value    string `json:"requiredValue"`
}

// Question is a single prompt in the questionnaire.
type Question struct {
	ID            string      `json:"id"`
	Text          string      `json:"question"`
	Kind          Kind        `json:"type"`
	Options       []Option    `json:"options,omitempty"`
	MaxSelections int         `json:"maxSelections,omitempty"`
	LeftLabel     string      `json:"leftLabel,omitempty"`
	RightLabel    string      `json:"rightLabel,omitempty"`
	Min           *float64    `json:"min,omitempty"`
	Max           *float64    `json:"max,omitempty"`
	Placeholder   string      `json:"placeholder,omitempty"`
	Dependency    *Dependency `json:"conditional,omitempty"`
}

// Section is a named group of questions in catalog order.
type Section struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Catalog is the full questionnaire. Immutable after Load.
type Catalog struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Questions returns all questions flattened in catalog order.
func (c *Catalog) Questions() []Question {
	var out []Question
	for _, s := range c.Sections {
		out = append(out, s.Questions...)
	}
	return out
}

// ByID returns the question with the given id, or nil.
func (c *Catalog) ByID(id string) *Question {
	for si := range c.Sections {
		qs := c.Sections[si].Questions
		for qi := range qs {
			if qs[qi].ID == id {
				return &qs[qi]
			}
		}
	}
	return nil
}
