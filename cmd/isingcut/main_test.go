package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isingcut/decode"
	"github.com/katalvlaran/isingcut/exact"
	"github.com/katalvlaran/isingcut/graph"
)

const fourVertexGraph = `# worked example
4 5
1 2 8
1 3 -9
2 3 7
2 4 9
3 4 -8
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveJSON(t *testing.T) {
	g := writeFile(t, "g.txt", fourVertexGraph)

	out, err := run(t, "solve", "--graph", g, "-o", "json", "--workers", "2")
	require.NoError(t, err)

	var got struct {
		Source     string  `json:"source"`
		Cut        float64 `json:"cut"`
		Energy     float64 `json:"energy"`
		Offset     float64 `json:"offset"`
		Assignment []int   `json:"assignment"`
		Index      uint64  `json:"index"`
		Evaluated  uint64  `json:"evaluated"`
		Components int     `json:"components"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "exact", got.Source)
	require.InDelta(t, 24.0, got.Cut, 1e-9)
	require.InDelta(t, -20.5, got.Energy, 1e-9)
	require.InDelta(t, -3.5, got.Offset, 1e-9)
	require.Equal(t, []int{0, 1, 0, 0}, got.Assignment)
	require.Equal(t, uint64(4), got.Index)
	require.Equal(t, uint64(16), got.Evaluated)
	require.Equal(t, 1, got.Components)
}

func TestSolveReportsComponents(t *testing.T) {
	g := writeFile(t, "g.txt", "4 1\n1 2 5\n")

	out, err := run(t, "solve", "--graph", g, "-o", "text")
	require.NoError(t, err)
	require.Contains(t, out, "components:  3")
	require.Contains(t, out, "cut:         5")
}

func TestSolveYAMLRandom(t *testing.T) {
	out, err := run(t, "solve", "--random", "8", "--p", "0.5", "--range", "5", "--seed", "3")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Contains(t, got, "cut")
	require.Contains(t, got, "assignment")
	require.Equal(t, 256, got["evaluated"])
}

func TestSolveTooLarge(t *testing.T) {
	_, err := run(t, "solve", "--random", "10", "--max-vars", "8")
	require.ErrorIs(t, err, exact.ErrInputTooLarge)
}

func TestSolveIterationCap(t *testing.T) {
	_, err := run(t, "solve", "--random", "6", "--max-iterations", "10")
	require.ErrorIs(t, err, exact.ErrTimeout)
}

func TestSolveNeedsGraph(t *testing.T) {
	_, err := run(t, "solve")
	require.ErrorIs(t, err, errConfig)
}

func TestSolveBadGraph(t *testing.T) {
	g := writeFile(t, "g.txt", "4 2\n1 2 3\n")
	_, err := run(t, "solve", "--graph", g)
	require.ErrorIs(t, err, graph.ErrFormat)
}

func TestDecodeBitstringText(t *testing.T) {
	g := writeFile(t, "g.txt", fourVertexGraph)

	out, err := run(t, "decode", "--graph", g, "-o", "text", "1011")
	require.NoError(t, err)
	require.Contains(t, out, "assignment:  1011")
	require.Contains(t, out, "cut:         24")
	require.Contains(t, out, "left:        [1]")
}

func TestDecodeDistribution(t *testing.T) {
	g := writeFile(t, "g.txt", fourVertexGraph)
	lines := make([]string, 16)
	for i := range lines {
		lines[i] = "0"
	}
	lines[4], lines[11] = "0.6", "0.4"
	dist := writeFile(t, "p.txt", "# probabilities\n"+strings.Join(lines, "\n")+"\n")

	out, err := run(t, "decode", "--graph", g, "--dist", dist, "-o", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"source": "distribution"`)
	require.Contains(t, out, `"cut": 24`)
}

func TestDecodeCounts(t *testing.T) {
	g := writeFile(t, "g.txt", fourVertexGraph)
	counts := writeFile(t, "c.yaml", "\"1011\": 70\n\"0000\": 30\n")

	out, err := run(t, "decode", "--graph", g, "--counts", counts)
	require.NoError(t, err)
	require.Contains(t, out, "assignment: [1, 0, 1, 1]")
}

func TestDecodeErrors(t *testing.T) {
	g := writeFile(t, "g.txt", fourVertexGraph)

	_, err := run(t, "decode", "--graph", g)
	require.ErrorIs(t, err, errConfig)

	_, err = run(t, "decode", "--graph", g, "10")
	require.ErrorIs(t, err, decode.ErrDecode)

	unnormalized := writeFile(t, "p.txt", strings.Repeat("1\n", 16))
	_, err = run(t, "decode", "--graph", g, "--dist", unnormalized)
	require.ErrorIs(t, err, decode.ErrDecode)
}

func TestGenerateRoundTrip(t *testing.T) {
	out, err := run(t, "generate", "--random", "7", "--p", "0.4", "--range", "3", "--seed", "9")
	require.NoError(t, err)

	got, err := graph.Load(strings.NewReader(out))
	require.NoError(t, err)
	want, err := graph.Random(7, 0.4, 3, graph.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, want.Edges(), got.Edges())

	path := filepath.Join(t.TempDir(), "g.txt")
	_, err = run(t, "generate", "--random", "7", "--seed", "9", "--out", path)
	require.NoError(t, err)
	_, err = graph.LoadFile(path)
	require.NoError(t, err)
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "cfg.yaml", `
log_level: debug
output: json
solver:
  max_variables: 12
  workers: 3
  timeout: 30s
random:
  n: 5
  p: 1
  range: 2
  seed: 4
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.validate())
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, formatJSON, cfg.Output)
	require.Equal(t, 12, cfg.Solver.MaxVariables)
	require.Equal(t, 3, cfg.Solver.Workers)
	require.Equal(t, 30*time.Second, cfg.Solver.Timeout)
	require.Equal(t, RandomConfig{N: 5, P: 1, Range: 2, Seed: 4}, cfg.Random)

	// flags override the file
	out, err := run(t, "solve", "--config", path, "-o", "yaml", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "evaluated: 32")
}

func TestConfigValidation(t *testing.T) {
	cases := map[string]func(*Config){
		"output":   func(c *Config) { c.Output = "xml" },
		"max vars": func(c *Config) { c.Solver.MaxVariables = 0 },
		"workers":  func(c *Config) { c.Solver.Workers = 0 },
		"timeout":  func(c *Config) { c.Solver.Timeout = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(&cfg)
			require.True(t, errors.Is(cfg.validate(), errConfig))
		})
	}

	_, err := run(t, "solve", "--random", "4", "--log-level", "loud")
	require.ErrorIs(t, err, errConfig)

	_, err = run(t, "solve", "--random", "4", "--timeout", "soon")
	require.ErrorIs(t, err, errConfig)
}
