package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/linku/linku/ent"
	"github.com/linku/linku/ent/sessionrecord"
	"github.com/linku/linku/internal/match"
)

// Record keys. Each maps to exactly one SessionRecord row.
const (
	KeyAnswers     = "answers"
	KeyMatches     = "matches"
	KeyPreferences = "preferences"
)

// DefaultWeights is the fallback weight configuration used whenever no
// preference record exists or a field is absent. This is the single
// authoritative default site.
func DefaultWeights() match.Weights {
	return match.Weights{Academic: 0.6, Campus: 0.2, Social: 0.2}
}

// SessionRepo reads and writes the persisted session documents. All
// writes are whole-value replacements; readers never observe partial
// merges.
type SessionRepo interface {
	SaveAnswers(ctx context.Context, answers map[string]any) error
	// LoadAnswers returns nil when no quiz has been submitted.
	LoadAnswers(ctx context.Context) (map[string]any, error)

	SaveMatches(ctx context.Context, matches []match.Match) error
	// LoadMatches returns nil when no result set is stored. Legacy
	// payload shapes are normalized on load.
	LoadMatches(ctx context.Context) ([]match.Match, error)

	SaveWeights(ctx context.Context, w match.Weights) error
	// LoadWeights falls back to DefaultWeights per absent field.
	LoadWeights(ctx context.Context) (match.Weights, error)

	// Clear removes every session record.
	Clear(ctx context.Context) error
}

// sessionRepo implements SessionRepo on the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) SaveAnswers(ctx context.Context, answers map[string]any) error {
	return r.put(ctx, KeyAnswers, answers)
}

func (r *sessionRepo) LoadAnswers(ctx context.Context) (map[string]any, error) {
	raw, err := r.get(ctx, KeyAnswers)
	if err != nil || raw == nil {
		return nil, err
	}
	var answers map[string]any
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("decode stored answers: %w", err)
	}
	return answers, nil
}

func (r *sessionRepo) SaveMatches(ctx context.Context, matches []match.Match) error {
	return r.put(ctx, KeyMatches, matches)
}

func (r *sessionRepo) LoadMatches(ctx context.Context) ([]match.Match, error) {
	raw, err := r.get(ctx, KeyMatches)
	if err != nil || raw == nil {
		return nil, err
	}
	matches, err := match.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("decode stored matches: %w", err)
	}
	return matches, nil
}

func (r *sessionRepo) SaveWeights(ctx context.Context, w match.Weights) error {
	return r.put(ctx, KeyPreferences, w)
}

// storedWeights distinguishes absent fields from explicit zeros.
type storedWeights struct {
	Academic *float64 `json:"academic"`
	Campus   *float64 `json:"campus"`
	Social   *float64 `json:"social"`
}

func (r *sessionRepo) LoadWeights(ctx context.Context) (match.Weights, error) {
	w := DefaultWeights()

	raw, err := r.get(ctx, KeyPreferences)
	if err != nil {
		return w, err
	}
	if raw == nil {
		return w, nil
	}

	var sw storedWeights
	if err := json.Unmarshal(raw, &sw); err != nil {
		return w, fmt.Errorf("decode stored preferences: %w", err)
	}
	if sw.Academic != nil {
		w.Academic = *sw.Academic
	}
	if sw.Campus != nil {
		w.Campus = *sw.Campus
	}
	if sw.Social != nil {
		w.Social = *sw.Social
	}
	return w, nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	_, err := r.client.SessionRecord.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear session records: %w", err)
	}
	return nil
}

// put replaces the whole value stored under key.
func (r *sessionRepo) put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	n, err := r.client.SessionRecord.Update().
		Where(sessionrecord.Key(key)).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.SessionRecord.Create().
		SetKey(key).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create %s: %w", key, err)
	}
	return nil
}

// get returns the raw payload under key, or nil when absent.
func (r *sessionRepo) get(ctx context.Context, key string) (json.RawMessage, error) {
	rec, err := r.client.SessionRecord.Query().
		Where(sessionrecord.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query %s: %w", key, err)
	}
	return rec.Data, nil
}
