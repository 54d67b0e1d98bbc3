package search_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/search"
)

// TestParseAlgorithm accepts menu names and common spellings.
func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"DFS":     search.DFS,
		"bfs":     search.BFS,
		"A*":      search.AStar,
		"astar":   search.AStar,
		" a-star": search.AStar,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

// TestAlgorithms_MenuOrder keeps DFS first, the default selection.
func TestAlgorithms_MenuOrder(t *testing.T) {
	names := make([]string, 0, 3)
	for _, a := range search.Algorithms() {
		names = append(names, a.String())
	}
	assert.Equal(t, []string{"DFS", "BFS", "A*"}, names)
	assert.Equal(t, "Algorithm(7)", search.Algorithm(7).String())
}

// TestText_JSON checks Algorithm and Outcome travel as their names.
func TestText_JSON(t *testing.T) {
	type payload struct {
		Algorithm search.Algorithm `json:"algorithm"`
		Outcome   search.Outcome   `json:"outcome"`
	}
	b, err := json.Marshal(payload{search.AStar, search.Cancelled})
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"A*","outcome":"cancelled"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"algorithm":"bfs","outcome":"FOUND"}`), &p))
	assert.Equal(t, search.BFS, p.Algorithm)
	assert.Equal(t, search.Found, p.Outcome)

	assert.Error(t, json.Unmarshal([]byte(`{"outcome":"lost"}`), &p))
	_, err = json.Marshal(payload{Algorithm: search.Algorithm(-1)})
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

// TestOptions_NilIgnored keeps defaults when nil hooks are passed.
func TestOptions_NilIgnored(t *testing.T) {
	o := search.DefaultOptions()
	for _, opt := range []search.Option{
		search.WithContext(nil), //nolint:staticcheck
		search.WithOnStep(nil),
		search.WithCancel(nil),
		search.WithHeuristic(nil),
	} {
		opt(&o)
	}
	require.NotNil(t, o.Ctx)
	require.NotNil(t, o.OnStep)
	require.NotNil(t, o.Cancel)
	require.NotNil(t, o.Heuristic)
	assert.False(t, o.Cancel())
}
