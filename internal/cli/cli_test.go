package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/internal/cli"
	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/visualizer"
)

func noEnv(string) (string, bool) { return "", false }

// execute runs the root command with args and stdin, returning stdout,
// stderr and the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := cli.NewRootCmd("test", noEnv)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestList_Table(t *testing.T) {
	out, _, err := execute(t, "", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+len(visualizer.Catalog()))
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, out, "merge-sort")
	assert.Contains(t, out, "dynamic-programming")
}

func TestList_JSON(t *testing.T) {
	out, _, err := execute(t, "", "list", "--json")
	require.NoError(t, err)

	var algs []visualizer.Algorithm
	require.NoError(t, json.Unmarshal([]byte(out), &algs))
	assert.Len(t, algs, len(visualizer.Catalog()))
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := execute(t, `{"array": [3, 1, 2]}`, "run", "selection-sort")
	require.NoError(t, err)

	assert.Contains(t, out, "algorithm: selection-sort")
	assert.Contains(t, out, "   1. ")
	assert.Contains(t, out, "result: [1,2,3]")
}

func TestRun_FileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"n": 10}`), 0o600))
	_, _, err := execute(t, "", "run", "fibonacci", path)
	assert.ErrorIs(t, err, visualizer.ErrUnknownAlgorithm)

	require.NoError(t, os.WriteFile(path, []byte(`{"activities": [[1, 4], [3, 5], [5, 7]]}`), 0o600))
	out, _, err := execute(t, "", "run", "activity-selection", path, "--json")
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []any{[]any{1.0, 4.0}, []any{5.0, 7.0}}, res["result"])
}

func TestRun_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "run", "merge-sort", filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_InvalidListsViolations(t *testing.T) {
	_, _, err := execute(t, `{"weights": [1], "profits": [], "capacity": -2}`, "run", "knapsack")
	require.ErrorIs(t, err, visualizer.ErrInvalidInput)
	assert.Contains(t, err.Error(), "\n  - profits")
	assert.Contains(t, err.Error(), "\n  - capacity")
}

func TestRun_UnsolvablePrintsTrace(t *testing.T) {
	out, _, err := execute(t, `{"matrix": [[0, 1], [1, 0]]}`, "run", "topo-sort")
	assert.ErrorIs(t, err, visualizer.ErrUnsolvable)
	assert.Contains(t, out, "algorithm: topo-sort")
}

func TestRun_SeedIsDeterministic(t *testing.T) {
	in := `{"array": [5, 3, 8, 1, 9, 2], "pivot_strategy": "random"}`
	a, _, err := execute(t, in, "run", "quick-sort", "--seed", "7")
	require.NoError(t, err)
	b, _, err := execute(t, in, "run", "quick-sort", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_Verify(t *testing.T) {
	_, stderr, err := execute(t, `{"matrix": [[0, 2], [2, 0]]}`, "run", "prims", "--verify")
	require.NoError(t, err)
	assert.Contains(t, stderr, "verify: ok")

	_, stderr, err = execute(t, `{"array": [1]}`, "run", "merge-sort", "--verify")
	require.NoError(t, err)
	assert.Contains(t, stderr, "verify: unavailable")
}

func TestServe_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "", "serve", "--log-format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cli.Serve(ctx, config.Default(), logger, ln) }()

	url := "http://" + ln.Addr().String()
	require.Eventually(t, func() bool {
		resp, err := http.Get(url + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Post(url+"/api/merge-sort", "application/json", strings.NewReader(`{"array": [2, 1]}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
