package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/linku/linku/internal/match"
	"github.com/linku/linku/internal/store"
)

var (
	// ErrExportInFlight is returned when Export is invoked while a
	// previous export has not finished.
	ErrExportInFlight = errors.New("an export is already running")

	// ErrNoSession is returned when no quiz answers are stored.
	ErrNoSession = errors.New("no stored quiz answers; take the quiz first")
)

// Fetcher is the slice of the collaborator client the exporter needs.
type Fetcher interface {
	FullMatches(ctx context.Context, answers map[string]any) ([]match.Match, error)
	DownloadReport(ctx context.Context, matches []match.Match, w match.Weights) ([]byte, error)
}

// Exporter produces the downloadable match report. One export runs at
// a time: the UI disables its trigger while InFlight is true, and the
// exporter itself refuses concurrent invocation as a second line of
// defense.
type Exporter struct {
	repo     store.SessionRepo
	client   Fetcher
	outDir   string
	log      *zap.Logger
	inFlight atomic.Bool
}

// New creates an Exporter writing reports into outDir.
func New(repo store.SessionRepo, client Fetcher, outDir string, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{repo: repo, client: client, outDir: outDir, log: log}
}

// InFlight reports whether an export is currently running.
func (e *Exporter) InFlight() bool {
	return e.inFlight.Load()
}

// Export regenerates the full match report and writes it to disk,
// returning the written file path.
//
// The displayed result set may be truncated, so the exporter re-asks
// the scoring service for the complete set using the original session
// answers, then hands the tuple rows and weight configuration to the
// report service. Any failure aborts the whole operation and leaves no
// partial artifact.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return "", ErrExportInFlight
	}
	defer e.inFlight.Store(false)

	weights, err := e.repo.LoadWeights(ctx)
	if err != nil {
		return "", fmt.Errorf("load weights: %w", err)
	}

	answers, err := e.repo.LoadAnswers(ctx)
	if err != nil {
		return "", fmt.Errorf("load answers: %w", err)
	}
	if answers == nil {
		return "", ErrNoSession
	}

	matches, err := e.client.FullMatches(ctx, answers)
	if err != nil {
		return "", fmt.Errorf("fetch full match set: %w", err)
	}

	pdf, err := e.client.DownloadReport(ctx, matches, weights)
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}

	path := filepath.Join(e.outDir, fileName(time.Now()))
	if err := writeAtomic(path, pdf); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	e.log.Info("report exported",
		zap.String("path", path),
		zap.Int("matches", len(matches)),
	)
	return path, nil
}

// fileName names the artifact with the current date.
func fileName(now time.Time) string {
	return fmt.Sprintf("LinkU_matches_%s.pdf", now.Format("20060102_150405"))
}

// writeAtomic writes data next to the target and renames it into
// place, so a failed export never leaves a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".linku-report-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
