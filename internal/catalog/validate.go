package catalog

import "fmt"

// Validate checks the structural rules the JSON Schema cannot express:
// unique option values per question, sane selection caps, and
// dependencies that only point at earlier questions.
func Validate(c *Catalog) error {
	seen := make(map[string]bool)

	for _, s := range c.Sections {
		for _, q := range s.Questions {
			if seen[q.ID] {
				return fmt.Errorf("question %q: duplicate id", q.ID)
			}

			if err := validateQuestion(q); err != nil {
				return err
			}

			if q.Dependency != nil {
				if q.Dependency.Question == q.ID {
					return fmt.Errorf("question %q: depends on itself", q.ID)
				}
				if !seen[q.Dependency.Question] {
					return fmt.Errorf("question %q: depends on %q which does not appear earlier in the catalog",
						q.ID, q.Dependency.Question)
				}
			}

			seen[q.ID] = true
		}
	}
	return nil
}

func validateQuestion(q Question) error {
	switch q.Kind {
	case KindSingle, KindScale:
		if len(q.Options) < 2 {
			return fmt.Errorf("question %q: %s kind needs at least 2 options", q.ID, q.Kind)
		}
	case KindMulti:
		if len(q.Options) == 0 {
			return fmt.Errorf("question %q: multi kind needs options", q.ID)
		}
		if q.MaxSelections < 1 {
			return fmt.Errorf("question %q: maxSelections must be >= 1", q.ID)
		}
		if q.MaxSelections > len(q.Options) {
			return fmt.Errorf("question %q: maxSelections %d exceeds option count %d",
				q.ID, q.MaxSelections, len(q.Options))
		}
	case KindNumber:
		if len(q.Options) != 0 {
			return fmt.Errorf("question %q: number kind takes no options", q.ID)
		}
		if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
			return fmt.Errorf("question %q: min %v exceeds max %v", q.ID, *q.Min, *q.Max)
		}
	default:
		return fmt.Errorf("question %q: unknown kind %q", q.ID, q.Kind)
	}

	values := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if values[o.Value] {
			return fmt.Errorf("question %q: duplicate option value %q", q.ID, o.Value)
		}
		values[o.Value] = true
	}
	return nil
}
