package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/trace"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDemo_Text(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Final Shortest Distances:\nA: 0\nB: 3\nC: 1\nD: 8\n")
	assert.Contains(t, out, "  1  visit_node A  visited=[A]  {A:0 B:inf C:inf D:inf}")
	assert.Contains(t, out, "  8  relax_edge B→D = 8  {A:0 B:3 C:1 D:8}")
	assert.Contains(t, out, "  9  visit_node D")
}

func TestRun_JSON(t *testing.T) {
	path := writeGraph(t, "A: {B: 1}\nB: {}\nC: {}\n")
	out, err := execute(t, "run", "--graph", path, "--start", "A", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Distances map[string]*int64 `json:"distances"`
		Steps     trace.Trace       `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.Distances["B"])
	assert.Equal(t, int64(1), *res.Distances["B"])
	assert.Nil(t, res.Distances["C"])
	assert.Equal(t, []string{"A", "B"}, res.Steps.Visits())
}

func TestRun_CumulativeRepeat(t *testing.T) {
	path := writeGraph(t, "A: {B: 1}\nB: {A: 1}\n")
	out, err := execute(t, "run", "-g", path, "-s", "A", "--format", "json", "--cumulative", "--repeat", "2")
	require.NoError(t, err)

	var res struct {
		Steps trace.Trace `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Steps, 6)
	assert.Len(t, trace.Split(res.Steps), 2)
}

func TestRun_Errors(t *testing.T) {
	path := writeGraph(t, "A: {B: 1}\nB: {}\n")

	_, err := execute(t, "run", "--graph", path, "--start", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownStartNode)

	_, err = execute(t, "run", "--graph", path, "--start", "A", "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "run", "--graph", path, "--start", "A", "--repeat", "0")
	assert.Error(t, err)

	bad := writeGraph(t, "A: {Q: 1}\n")
	_, err = execute(t, "run", "--graph", bad, "--start", "A", "--strict")
	assert.ErrorIs(t, err, dijkstra.ErrInvalidGraph)
}

func TestValidate(t *testing.T) {
	ok := writeGraph(t, "A: {B: 1}\nB: {}\n")
	out, err := execute(t, "validate", "--graph", ok)
	require.NoError(t, err)
	assert.Equal(t, "ok: 2 nodes, 1 edges\n", out)

	bad := writeGraph(t, "A: {B: -1, Q: 1}\nB: {}\n")
	out, err = execute(t, "validate", "--graph", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 problem(s)")
	assert.Contains(t, out, "A→B weight=-1")
	assert.Contains(t, out, "A→Q")
}

func TestFlags_RejectedBeforeLoading(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := execute(t, "run", "--graph", missing, "--start", "A", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)

	_, err = execute(t, "run", "--graph", missing, "--start", "A", "--repeat", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--repeat must be at least 1")

	_, err = execute(t, "run", "--graph", missing, "--start", "A", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --log-level "loud"`)

	out, err := execute(t, "demo", "--format", "yaml")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestFlags_LogLevels(t *testing.T) {
	for _, lvl := range []string{"trace", "debug", "info", "warn", "error", "off", "WARN"} {
		t.Run(lvl, func(t *testing.T) {
			out, err := execute(t, "demo", "--log-level", lvl)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, "Final Shortest Distances:"))
		})
	}
}
