package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linku/linku/internal/match"
)

func TestReportTuplesFixedOrder(t *testing.T) {
	rows := ReportTuples([]match.Match{
		{School: "Waterloo", Program: "SE", Overall: 0.9, Academic: 0.95, Campus: 0.8, Social: 0.7},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, []any{0.9, 0.95, 0.8, 0.7, "Waterloo", "SE"}, rows[0])
}

func TestReportTuplesPreserveOrder(t *testing.T) {
	rows := ReportTuples([]match.Match{
		{School: "B", Program: "q", Overall: 0.2},
		{School: "A", Program: "p", Overall: 0.9},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0][4])
	assert.Equal(t, "A", rows[1][4])
}
