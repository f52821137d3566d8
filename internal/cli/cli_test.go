package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/searchlab/problem"
	"github.com/katalvlaran/searchlab/search"
)

const sampleText = `Nodes:
1: (4,1)
2: (2,2)
3: (4,4)
4: (6,3)
5: (5,6)
6: (7,5)
Edges:
(2,1): 4
(3,1): 5
(1,3): 5
(2,3): 4
(3,2): 5
(4,1): 6
(1,4): 6
(4,3): 5
(3,5): 6
(5,3): 6
(4,5): 7
(5,4): 8
(6,3): 7
(3,6): 7
Origin:
2
Destinations:
5; 4
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// execute runs the root command and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRun_PrintsResultBlock(t *testing.T) {
	path := writeFile(t, "PathFinder-test.txt", sampleText)

	cases := map[string]string{
		"dfs":  "%s DFS\n5 4\n2 -> 3 -> 5\n",
		"BFS":  "%s BFS\n4 4\n2 -> 1 -> 4\n",
		"AS":   "%s AS\n5 4\n2 -> 3 -> 5\n",
		"CUS2": "%s CUS2\n5 3\n2 -> 3 -> 5\n",
	}
	for method, want := range cases {
		out, err := execute(t, "run", path, method)
		require.NoError(t, err, method)
		assert.Equal(t, strings.Replace(want, "%s", path, 1), out, method)
	}
}

func TestRun_NoPath(t *testing.T) {
	path := writeFile(t, "island.txt", "Nodes:\n1: (0,0)\n2: (1,1)\nOrigin: 1\nDestinations: 2\n")
	out, err := execute(t, "run", path, "BFS")
	require.NoError(t, err)
	assert.Equal(t, path+" BFS\nNo path found.\n", out)
}

func TestRun_Goal(t *testing.T) {
	path := writeFile(t, "p.txt", sampleText)
	out, err := execute(t, "run", path, "GBFS", "--goal", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "\n4 ")

	_, err = execute(t, "run", path, "GBFS", "--goal", "3")
	assert.ErrorIs(t, err, problem.ErrGoalNotDestination)
}

func TestRun_Errors(t *testing.T) {
	path := writeFile(t, "p.txt", sampleText)

	_, err := execute(t, "run", path, "IDDFS")
	assert.ErrorIs(t, err, search.ErrUnknownMethod)

	_, err = execute(t, "run", path)
	assert.Error(t, err)

	_, err = execute(t, "run", path, "CUS2", "--weight", "0.5")
	assert.Error(t, err)
}

func TestRun_MaxExpansions(t *testing.T) {
	path := writeFile(t, "p.txt", sampleText)
	out, err := execute(t, "run", path, "BFS", "--max-expansions", "2")
	require.NoError(t, err)
	assert.Equal(t, path+" BFS\nSearch truncated after 2 expansions.\n", out)
	assert.NotContains(t, out, "No path found.")

	// the limit is large enough: a normal result
	out, err = execute(t, "run", path, "BFS", "--max-expansions", "4")
	require.NoError(t, err)
	assert.Equal(t, path+" BFS\n4 4\n2 -> 1 -> 4\n", out)

	out, err = execute(t, "compare", path, "BFS", "DFS", "--max-expansions", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "TRUNCATED")
	assert.Contains(t, lines[2], "TRUNCATED")
	assert.NotContains(t, out, "No path found.")
}

func TestRun_TraceFormats(t *testing.T) {
	path := writeFile(t, "p.txt", sampleText)

	out, err := execute(t, "run", path, "GBFS", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "VISIT")
	assert.Contains(t, out, "NODE")

	out, err = execute(t, "run", path, "GBFS", "--trace", "--trace-format", "json")
	require.NoError(t, err)
	jsonPart := out[strings.Index(out, "{"):]
	var res struct {
		Method string `json:"method"`
		State  string `json:"state"`
		Trace  struct {
			Entries []struct {
				Node int `json:"node"`
			} `json:"entries"`
		} `json:"trace"`
	}
	require.NoError(t, json.Unmarshal([]byte(jsonPart), &res))
	assert.Equal(t, "GBFS", res.Method)
	assert.Equal(t, "succeeded", res.State)
	require.Len(t, res.Trace.Entries, 3)
	assert.Equal(t, 5, res.Trace.Entries[2].Node)

	out, err = execute(t, "run", path, "GBFS", "--trace", "--trace-format", "yaml")
	require.NoError(t, err)
	yamlPart := out[strings.Index(out, "method:"):]
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(yamlPart), &doc))
	assert.Equal(t, "succeeded", doc["state"])
}

func TestCompare(t *testing.T) {
	path := writeFile(t, "p.txt", sampleText)
	out, err := execute(t, "compare", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[1], "DFS"))
	assert.Contains(t, lines[2], "2 -> 1 -> 4")

	out, err = execute(t, "compare", path, "as", "cus1")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestMethods(t *testing.T) {
	out, err := execute(t, "methods")
	require.NoError(t, err)
	for _, m := range search.Methods() {
		assert.Contains(t, out, m)
	}
	assert.Contains(t, out, "AS")
}

func TestConvert(t *testing.T) {
	path := writeFile(t, "p.txt", sampleText)
	out, err := execute(t, "convert", path)
	require.NoError(t, err)
	f, err := problem.ParseYAML(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 14, f.Graph.EdgeCount())

	_, err = execute(t, "convert", path, "--to", "xml")
	assert.ErrorIs(t, err, problem.ErrUnsupportedFormat)
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "p.txt", sampleText)
	cfg := writeFile(t, "searchlab.yaml", "search:\n  max_expansions: 1\n")
	out, err := execute(t, "--config", cfg, "run", path, "DFS")
	require.NoError(t, err)
	assert.Equal(t, path+" DFS\nSearch truncated after 1 expansions.\n", out)

	bad := writeFile(t, "bad.yaml", "search:\n  trace_format: csv\n")
	_, err = execute(t, "--config", bad, "run", path, "DFS")
	assert.Error(t, err)
}
