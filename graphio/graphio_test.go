package graphio_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/digraph"
	"github.com/katalvlaran/frontier/graphio"
)

const sampleYAML = `
vertices: 5
source: 0
edges:
  - [0, 1, 10]
  - [0, 2, 3]
  - {from: 1, to: 2, weight: 1}
  - [1, 3, 2]
  - [2, 1, 4]
  - [2, 3, 8]
  - [2, 4, 2]
  - [3, 4, 7]
  - {from: 4, to: 3, weight: 9}
`

const sampleJSON = `{
  "vertices": 5,
  "edges": [
    [0, 1, 10], [0, 2, 3], {"from": 1, "to": 2, "weight": 1}, [1, 3, 2],
    [2, 1, 4], [2, 3, 8], [2, 4, 2], [3, 4, 7], {"from": 4, "to": 3, "weight": 9}
  ]
}`

func TestDecode_YAMLAndJSONAgree(t *testing.T) {
	y, err := graphio.Decode(strings.NewReader(sampleYAML), graphio.YAML)
	require.NoError(t, err)
	j, err := graphio.Decode(strings.NewReader(sampleJSON), graphio.JSON)
	require.NoError(t, err)

	assert.Equal(t, y, j)
	assert.Equal(t, 5, y.Vertices)
	assert.Len(t, y.Edges, 9)
	assert.Equal(t, graphio.EdgeSpec{From: 1, To: 2, Weight: 1}, y.Edges[2])

	g, err := y.Graph()
	require.NoError(t, err)
	assert.Equal(t, 9, g.EdgeCount())
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]struct {
		body   string
		format graphio.Format
	}{
		"short triple yaml":     {"vertices: 2\nedges:\n  - [0, 1]\n", graphio.YAML},
		"scalar edge yaml":      {"vertices: 2\nedges:\n  - 7\n", graphio.YAML},
		"float weight yaml":     {"vertices: 2\nedges:\n  - [0, 1, 1.5]\n", graphio.YAML},
		"float weight map":      {"vertices: 2\nedges:\n  - {from: 0, to: 1, weight: 2.9}\n", graphio.YAML},
		"float vertices":        {"vertices: 2.7\nedges: []\n", graphio.YAML},
		"string source":         {"vertices: 2\nsource: \"1\"\n", graphio.YAML},
		"nested triple":         {"vertices: 2\nedges:\n  - [[0], 1, 2]\n", graphio.YAML},
		"unknown edge key":      {"vertices: 3\nedges:\n  - {from: 0, too: 2, weight: 3}\n", graphio.YAML},
		"missing edge key":      {"vertices: 3\nedges:\n  - {from: 0, weight: 3}\n", graphio.YAML},
		"duplicate edge key":    {"vertices: 3\nedges:\n  - {from: 0, to: 1, to: 2, weight: 3}\n", graphio.YAML},
		"unknown key yaml":      {"vertices: 2\nvertex: 3\n", graphio.YAML},
		"edges not a list":      {"vertices: 2\nedges: {from: 0}\n", graphio.YAML},
		"scalar document":       {"7\n", graphio.YAML},
		"float weight json":     {`{"vertices":2,"edges":[[0,1,1.5]]}`, graphio.JSON},
		"unknown edge key json": {`{"vertices":3,"edges":[{"from":0,"too":2,"weight":3}]}`, graphio.JSON},
		"missing edge key json": {`{"vertices":3,"edges":[{"from":0,"weight":3}]}`, graphio.JSON},
		"unknown key json":      {`{"vertices":2,"vertex":3}`, graphio.JSON},
		"empty yaml":            {"", graphio.YAML},
		"long triple json":      {`{"vertices":2,"edges":[[0,1,2,3]]}`, graphio.JSON},
		"broken json":           {`{"vertices":`, graphio.JSON},
		"unknown format":        {"vertices: 1", graphio.Format(9)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.Decode(strings.NewReader(tc.body), tc.format)
			assert.ErrorIs(t, err, graphio.ErrBadDocument)
		})
	}
}

func TestDecode_IntegerFormsAgree(t *testing.T) {
	y, err := graphio.Decode(strings.NewReader("vertices: 3\nsource: 1\nedges:\n  - {weight: 4, to: 2, from: 1}\n  - [2, 0, 0]\n"), graphio.YAML)
	require.NoError(t, err)
	j, err := graphio.Decode(strings.NewReader(`{"vertices":3,"source":1,"edges":[{"weight":4,"to":2,"from":1},[2,0,0]]}`), graphio.JSON)
	require.NoError(t, err)

	assert.Equal(t, j, y)
	assert.Equal(t, []graphio.EdgeSpec{{From: 1, To: 2, Weight: 4}, {From: 2, To: 0, Weight: 0}}, y.Edges)

	empty, err := graphio.Decode(strings.NewReader("vertices: 1\nedges:\n"), graphio.YAML)
	require.NoError(t, err)
	assert.Empty(t, empty.Edges)
}

func TestDocument_GraphValidation(t *testing.T) {
	doc := &graphio.Document{Vertices: 2, Edges: []graphio.EdgeSpec{{From: 0, To: 5, Weight: 1}}}
	_, err := doc.Graph()
	assert.ErrorIs(t, err, digraph.ErrOutOfRange)

	doc = &graphio.Document{Vertices: 2, Edges: []graphio.EdgeSpec{{From: 0, To: 1, Weight: -1}}}
	_, err = doc.Graph()
	assert.ErrorIs(t, err, digraph.ErrInvalidArgument)
}

func TestEncode_RoundTripThroughFiles(t *testing.T) {
	g := digraph.MustNew(3)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 2, 0))
	doc := graphio.FromGraph(g, 1)

	dir := t.TempDir()
	for _, name := range []string{"g.yaml", "g.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.WriteFile(path, doc))

		back, err := graphio.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, doc, back, name)
	}

	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, graphio.YAML, doc))
	assert.Contains(t, buf.String(), "- [0, 1, 4]")

	_, err := graphio.ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, graphio.JSON, graphio.FormatFromPath("a/b.JSON"))
	assert.Equal(t, graphio.YAML, graphio.FormatFromPath("a/b.yml"))
	assert.Equal(t, graphio.YAML, graphio.FormatFromPath("graph"))
	assert.Equal(t, "json", graphio.JSON.String())
}

func TestWriteDistances(t *testing.T) {
	dist := []int64{0, 7, math.MaxInt64}

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteDistances(&buf, graphio.OutputText, 0, dist))
	assert.Equal(t, "[0, 7, inf]\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.WriteDistances(&buf, graphio.OutputJSON, 0, dist))
	assert.JSONEq(t, `{"source":0,"distances":[0,7,null]}`, buf.String())

	buf.Reset()
	require.NoError(t, graphio.WriteDistances(&buf, graphio.OutputYAML, 2, dist))
	assert.YAMLEq(t, "source: 2\ndistances: [0, 7, null]\n", buf.String())

	assert.ErrorIs(t, graphio.WriteDistances(&buf, "xml", 0, dist), graphio.ErrBadDocument)
}

func TestParseOutputFormat(t *testing.T) {
	f, err := graphio.ParseOutputFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, graphio.OutputJSON, f)

	_, err = graphio.ParseOutputFormat("csv")
	assert.ErrorIs(t, err, graphio.ErrBadDocument)
}
