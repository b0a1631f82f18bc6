package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linku/linku/internal/match"
)

func defaultWeightsForTest() match.Weights {
	return match.Weights{Academic: 0.6, Campus: 0.2, Social: 0.2}
}

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil), srv
}

func TestSubmitQuizBareArray(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/match", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`[{"school":"Waterloo","program":"SE","overall":0.9,"academic":0.95,"campus":0.8,"social":0.7}]`))
	}))

	matches, err := c.SubmitQuiz(context.Background(), map[string]any{"AA": []string{"engineering"}})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Waterloo", matches[0].School)
}

func TestSubmitQuizWrappedShape(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"matches":[{"school":"Toronto","program":"CS","overall":0.8,"academic":0.8,"campus":0.8,"social":0.8}]}`))
	}))

	matches, err := c.SubmitQuiz(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Toronto", matches[0].School)
}

func TestSubmitQuizTransportError(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.SubmitQuiz(context.Background(), nil)
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.Status)
}

func TestSubmitQuizDecodeError(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"not a match set"`))
	}))

	_, err := c.SubmitQuiz(context.Background(), nil)
	var derr *DecodeError
	assert.ErrorAs(t, err, &derr)
}

func TestSubmitQuizUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second, nil)

	_, err := c.SubmitQuiz(context.Background(), nil)
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.Status)
}

func TestFullMatchesEnvelope(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/full-matches", r.URL.Path)
		w.Write([]byte(`{"success":true,"matches":[
			{"school":"A","program":"p","overall":0.9,"academic":0.9,"campus":0.9,"social":0.9},
			{"school":"B","program":"q","overall":0.5,"academic":0.5,"campus":0.5,"social":0.5}
		]}`))
	}))

	matches, err := c.FullMatches(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestFullMatchesFailureEnvelope(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"scoring unavailable"}`))
	}))

	_, err := c.FullMatches(context.Background(), nil)
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Error(), "scoring unavailable")
}

func TestProgramMentorsEscapesCompositeKey(t *testing.T) {
	var gotPath atomic.Value
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.EscapedPath())
		w.Write([]byte(`[{"name":"Ada","details":"2nd year","avatar":"/static/ada.png","contactLink":"mailto:ada@example.com"}]`))
	}))

	mentors, err := c.ProgramMentors(context.Background(), "Waterloo", "Software Engineering")
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, "Ada", mentors[0].Name)
	assert.Equal(t, "/api/program-mentors/Waterloo_Software%20Engineering", gotPath.Load())
}

func TestProgramMentorsSoftFailure(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	mentors, err := c.ProgramMentors(context.Background(), "Nowhere", "Nothing")
	assert.NoError(t, err, "mentor misses must be downgraded, not surfaced")
	assert.Empty(t, mentors)
}

func TestProgramMentorsSoftFailureOnGarbage(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"oops": true}`))
	}))

	mentors, err := c.ProgramMentors(context.Background(), "A", "B")
	assert.NoError(t, err)
	assert.Empty(t, mentors)
}

func TestChanceMe(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chance-me", r.URL.Path)
		w.Write([]byte(`{"success":true,"prediction":"Likely admit (78%)"}`))
	}))

	pred, err := c.ChanceMe(context.Background(), ChanceRequest{School: "Waterloo", Program: "SE", Top6: "95"})
	require.NoError(t, err)
	assert.Equal(t, "Likely admit (78%)", pred)
}

func TestChanceMeFailureEnvelope(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"no data for school"}`))
	}))

	_, err := c.ChanceMe(context.Background(), ChanceRequest{School: "X", Program: "Y", Top6: "90"})
	assert.Error(t, err)
}

func TestDownloadReportStreamsBinary(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/download-pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))

	data, err := c.DownloadReport(context.Background(), nil, defaultWeightsForTest())
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestContextCancellation(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server starts watching the connection
		// and sees the client give up; only then does the request
		// context fire and the handler return, letting Close finish.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.SubmitQuiz(ctx, nil)
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.True(t, errors.Is(terr.Err, context.DeadlineExceeded) || terr.Err != nil)
}
