package trace_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/trace"
)

const inf = core.Infinity

// chain is the trace of A→B(2) on {A:{B:2}, B:{}}.
func chain() trace.Trace {
	return trace.Trace{
		{Kind: trace.KindVisitNode, Node: "A", Visited: []string{"A"},
			Distances: core.Distances{"A": 0, "B": inf}},
		{Kind: trace.KindRelaxEdge, From: "A", To: "B", Distance: 2,
			Distances: core.Distances{"A": 0, "B": 2}},
		{Kind: trace.KindVisitNode, Node: "B", Visited: []string{"A", "B"},
			Distances: core.Distances{"A": 0, "B": 2}},
	}
}

func TestRecorder_CopiesSnapshots(t *testing.T) {
	dist := core.Distances{"A": 0, "B": inf}
	visited := []string{"B", "A"}

	r := trace.NewRecorder()
	r.Visit("A", dist, visited)
	dist["B"] = 2
	visited[0] = "Z"
	r.Relax("A", "B", 2, dist)
	dist["B"] = 1

	events := r.Events()
	require.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"A", "B"}, events[0].Visited)
	assert.Equal(t, inf, events[0].Distances["B"])
	assert.Equal(t, int64(2), events[1].Distances["B"])

	events[1].Distances["B"] = 42
	assert.Equal(t, int64(2), r.Events()[1].Distances["B"])

	r.Reset()
	assert.Zero(t, r.Len())
}

func TestCheck_AcceptsFaithfulTrace(t *testing.T) {
	require.NoError(t, trace.Check(chain(), "A"))
	require.NoError(t, trace.CheckAgainst(core.Graph{"A": {"B": 2}, "B": {}}, chain(), "A"))
}

func TestCheck_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(tr trace.Trace) trace.Trace
		start  string
	}{
		{"wrong start", func(tr trace.Trace) trace.Trace { return tr }, "B"},
		{"double visit", func(tr trace.Trace) trace.Trace { return append(tr, tr[2].Clone()) }, "A"},
		{"visited set not grown", func(tr trace.Trace) trace.Trace {
			tr[2].Visited = []string{"B"}
			return tr
		}, "A"},
		{"distance increased", func(tr trace.Trace) trace.Trace {
			tr[2].Distances["B"] = 5
			return tr
		}, "A"},
		{"relax without improvement", func(tr trace.Trace) trace.Trace {
			tr[0].Distances["B"] = 2
			return tr
		}, "A"},
		{"relax snapshot mismatch", func(tr trace.Trace) trace.Trace {
			tr[1].Distance = 1
			return tr
		}, "A"},
		{"relax into visited", func(tr trace.Trace) trace.Trace {
			return append(tr, trace.Event{Kind: trace.KindRelaxEdge, From: "B", To: "A", Distance: -1,
				Distances: core.Distances{"A": -1, "B": 2}})
		}, "A"},
		{"unknown kind", func(tr trace.Trace) trace.Trace {
			return append(tr, trace.Event{Kind: "jump", Distances: core.Distances{"A": 0, "B": 2}})
		}, "A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := trace.Check(tc.mutate(chain()), tc.start)
			require.ErrorIs(t, err, trace.ErrInvariant)
		})
	}

	require.ErrorIs(t, trace.Check(nil, "A"), trace.ErrEmptyTrace)
}

func TestCheckAgainst_WrongWeight(t *testing.T) {
	g := core.Graph{"A": {"B": 3}, "B": {}}
	err := trace.CheckAgainst(g, chain(), "A")
	require.ErrorIs(t, err, trace.ErrInvariant)
	assert.Contains(t, err.Error(), "want 3")
}

func TestJSON_Shape(t *testing.T) {
	b, err := json.Marshal(chain()[:2])
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"action":"visit_node","current_node":"A","distances":{"A":0,"B":null},"visited_nodes":["A"]},
		{"action":"relax_edge","from":"A","to":"B","updated_distance":2,"distances":{"A":0,"B":2}}
	]`, string(b))

	var back trace.Trace
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, chain()[:2], back)
}

func TestJSON_UnknownKind(t *testing.T) {
	_, err := json.Marshal(trace.Event{Kind: "jump"})
	assert.ErrorIs(t, err, trace.ErrUnknownKind)

	var e trace.Event
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"action":"jump"}`), &e), trace.ErrUnknownKind)
}

func TestHash_Stable(t *testing.T) {
	h1, err := trace.Hash(chain())
	require.NoError(t, err)
	h2, err := trace.Hash(chain())
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)

	other := chain()
	other[1].Distance = 3
	other[1].Distances["B"] = 3
	h3, err := trace.Hash(other)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestSummarizeAndSplit(t *testing.T) {
	both := append(chain(), chain()...)
	s := trace.Summarize(both)
	assert.Equal(t, 4, s.Visits)
	assert.Equal(t, 2, s.Relaxations)
	assert.Equal(t, []string{"A", "B", "A", "B"}, s.Order)

	runs := trace.Split(both)
	require.Len(t, runs, 2)
	assert.Equal(t, chain(), runs[0])
	assert.Equal(t, chain(), runs[1])
	assert.Nil(t, trace.Split(nil))
}
