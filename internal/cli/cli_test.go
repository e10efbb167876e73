package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/strata/pkg/errors"
	"github.com/matzehuels/strata/pkg/graphio"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func writeGraphFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const diamondJSON = `{
  "nodes": [
    {"id": "a", "width": 50, "height": 30},
    {"id": "b", "width": 50, "height": 30},
    {"id": "c", "width": 50, "height": 30},
    {"id": "d", "width": 50, "height": 30}
  ],
  "edges": [
    {"from": "a", "to": "b"},
    {"from": "a", "to": "c"},
    {"from": "b", "to": "d"},
    {"from": "c", "to": "d"}
  ]
}`

func TestLayoutCommandWritesLayoutFile(t *testing.T) {
	dir := t.TempDir()
	input := writeGraphFile(t, dir, diamondJSON)
	output := filepath.Join(dir, "out.layout.json")

	c := testCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"layout", input, "-o", output, "--no-cache"})

	if err := root.Execute(); err != nil {
		t.Fatalf("layout command failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	l, err := graphio.UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("decode layout: %v", err)
	}
	if len(l.Nodes) != 4 {
		t.Errorf("layout has %d nodes, want 4", len(l.Nodes))
	}
}

func TestRenderCommandEmitsDOT(t *testing.T) {
	dir := t.TempDir()
	input := writeGraphFile(t, dir, diamondJSON)
	output := filepath.Join(dir, "graph.dot")

	c := testCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", input, "-f", "dot", "-o", output, "--no-cache"})

	if err := root.Execute(); err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	dot := string(data)
	if !strings.Contains(dot, "digraph") {
		t.Error("output should be a digraph")
	}
	if !strings.Contains(dot, `"a" -> "b"`) {
		t.Errorf("output missing edge a -> b:\n%s", dot)
	}
}

func TestRenderCommandRejectsBadFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeGraphFile(t, dir, diamondJSON)

	c := testCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", input, "-f", "gif"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error for unknown format")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %q, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestLayoutCommandRejectsBadRanker(t *testing.T) {
	dir := t.TempDir()
	input := writeGraphFile(t, dir, diamondJSON)

	c := testCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"layout", input, "--ranker", "bogus", "--no-cache"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error for unknown ranker")
	}
	if !errors.Is(err, errors.ErrCodeInvalidRanker) {
		t.Errorf("error code = %q, want INVALID_RANKER", errors.GetCode(err))
	}
}

func TestVersionTemplate(t *testing.T) {
	c := testCLI()
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out.String(), "strata") {
		t.Errorf("version output = %q, want it to mention strata", out.String())
	}
}
