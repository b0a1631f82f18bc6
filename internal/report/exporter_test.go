package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/linku/linku/internal/match"
)

// mockRepo implements store.SessionRepo for exporter tests.
type mockRepo struct {
	answers map[string]any
	weights match.Weights
}

func (m *mockRepo) SaveAnswers(_ context.Context, _ map[string]any) error { return nil }
func (m *mockRepo) LoadAnswers(_ context.Context) (map[string]any, error) { return m.answers, nil }
func (m *mockRepo) SaveMatches(_ context.Context, _ []match.Match) error  { return nil }
func (m *mockRepo) LoadMatches(_ context.Context) ([]match.Match, error)  { return nil, nil }
func (m *mockRepo) SaveWeights(_ context.Context, _ match.Weights) error  { return nil }
func (m *mockRepo) LoadWeights(_ context.Context) (match.Weights, error)  { return m.weights, nil }
func (m *mockRepo) Clear(_ context.Context) error                         { return nil }

// mockFetcher counts collaborator calls and can block or fail.
type mockFetcher struct {
	fullCalls   atomic.Int32
	reportCalls atomic.Int32
	entered     chan struct{} // closed-ish signal: one send per FullMatches entry
	release     chan struct{} // FullMatches blocks until readable
	failReport  bool
	matches     []match.Match
	pdf         []byte
}

func (f *mockFetcher) FullMatches(_ context.Context, _ map[string]any) ([]match.Match, error) {
	f.fullCalls.Add(1)
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.matches, nil
}

func (f *mockFetcher) DownloadReport(_ context.Context, _ []match.Match, _ match.Weights) ([]byte, error) {
	f.reportCalls.Add(1)
	if f.failReport {
		return nil, errors.New("report service down")
	}
	return f.pdf, nil
}

func testRepo() *mockRepo {
	return &mockRepo{
		answers: map[string]any{"AA": []string{"engineering"}},
		weights: match.Weights{Academic: 0.6, Campus: 0.2, Social: 0.2},
	}
}

func TestExportWritesDatedArtifact(t *testing.T) {
	dir := t.TempDir()
	fetcher := &mockFetcher{
		matches: []match.Match{{School: "Waterloo", Program: "SE", Overall: 0.9}},
		pdf:     []byte("%PDF-1.4 report"),
	}
	e := New(testRepo(), fetcher, dir, nil)

	path, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "LinkU_matches_") || !strings.HasSuffix(base, ".pdf") {
		t.Errorf("artifact name = %q", base)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if string(data) != "%PDF-1.4 report" {
		t.Errorf("artifact content = %q", data)
	}
}

func TestExportRequiresStoredAnswers(t *testing.T) {
	e := New(&mockRepo{weights: match.Weights{}}, &mockFetcher{}, t.TempDir(), nil)

	_, err := e.Export(context.Background())
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("err = %v, want ErrNoSession", err)
	}
}

func TestExportFailureLeavesNoArtifact(t *testing.T) {
	dir := t.TempDir()
	fetcher := &mockFetcher{failReport: true}
	e := New(testRepo(), fetcher, dir, nil)

	if _, err := e.Export(context.Background()); err == nil {
		t.Fatal("expected export failure")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed export left %d files behind", len(entries))
	}
	if e.InFlight() {
		t.Error("InFlight should reset after failure")
	}
}

func TestExportRefusesConcurrentInvocation(t *testing.T) {
	dir := t.TempDir()
	fetcher := &mockFetcher{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
		pdf:     []byte("pdf"),
	}
	e := New(testRepo(), fetcher, dir, nil)

	done := make(chan error, 1)
	go func() {
		_, err := e.Export(context.Background())
		done <- err
	}()

	<-fetcher.entered // first export is mid-flight
	if !e.InFlight() {
		t.Error("InFlight should be true during export")
	}

	// Second trigger in rapid succession.
	if _, err := e.Export(context.Background()); !errors.Is(err, ErrExportInFlight) {
		t.Errorf("second export err = %v, want ErrExportInFlight", err)
	}

	close(fetcher.release)
	if err := <-done; err != nil {
		t.Fatalf("first export failed: %v", err)
	}

	if got := fetcher.fullCalls.Load(); got != 1 {
		t.Errorf("full-match requests = %d, want exactly 1", got)
	}
	if got := fetcher.reportCalls.Load(); got != 1 {
		t.Errorf("report requests = %d, want exactly 1", got)
	}
}

func TestFileNameFormat(t *testing.T) {
	at := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	if name := fileName(at); name != "LinkU_matches_20260829_150405.pdf" {
		t.Errorf("fileName = %q", name)
	}
}
