package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

func testApp() *cli.App {
	return &cli.App{
		Name:      "carve",
		Writer:    io.Discard,
		ErrWriter: io.Discard,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}},
		},
		Commands: []*cli.Command{
			extractCmd(),
			symbolsCmd(),
			initCmd(),
		},
	}
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.py")
	content := `import os

def helper():
    return os.sep

def target():
    return helper()
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// TestExtractCommandE2E runs the extract command end-to-end with JSON output.
func TestExtractCommandE2E(t *testing.T) {
	src := writeSample(t)
	out := filepath.Join(t.TempDir(), "out.json")

	err := testApp().Run([]string{"carve", "-f", "json", "-o", out, "extract", src, "target"})
	if err != nil {
		t.Fatalf("extract command failed: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var decoded struct {
		Snippet struct {
			Symbol       string   `json:"symbol"`
			StartLine    int      `json:"start_line"`
			EndLine      int      `json:"end_line"`
			Dependencies []string `json:"dependencies"`
		} `json:"snippet"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Snippet.Symbol != "target" {
		t.Errorf("symbol = %q, want target", decoded.Snippet.Symbol)
	}
	if decoded.Snippet.StartLine != 6 || decoded.Snippet.EndLine != 7 {
		t.Errorf("span = %d-%d, want 6-7", decoded.Snippet.StartLine, decoded.Snippet.EndLine)
	}
	if len(decoded.Snippet.Dependencies) == 0 {
		t.Error("dependencies should not be empty")
	}
}

// TestExtractUsageError verifies the exact-arity check.
func TestExtractUsageError(t *testing.T) {
	prevExiter := cli.OsExiter
	var exitCode int
	cli.OsExiter = func(code int) { exitCode = code }
	defer func() { cli.OsExiter = prevExiter }()

	err := testApp().Run([]string{"carve", "extract", "only-one-arg"})
	if err == nil {
		t.Fatal("extract with one argument should fail")
	}
	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
}

// TestExtractNotFound verifies a missing symbol surfaces as an error.
func TestExtractNotFound(t *testing.T) {
	src := writeSample(t)

	err := testApp().Run([]string{"carve", "-f", "json", "-o",
		filepath.Join(t.TempDir(), "out.json"), "extract", src, "no_such_symbol"})
	if err == nil {
		t.Fatal("extract of unknown symbol should fail")
	}
}

// TestSymbolsCommandE2E runs the symbols command end-to-end.
func TestSymbolsCommandE2E(t *testing.T) {
	src := writeSample(t)
	out := filepath.Join(t.TempDir(), "out.json")

	err := testApp().Run([]string{"carve", "-f", "json", "-o", out, "symbols", src})
	if err != nil {
		t.Fatalf("symbols command failed: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var decoded struct {
		Defined []string `json:"defined"`
		Imports []string `json:"imports"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(decoded.Defined) != 2 {
		t.Errorf("defined = %v, want 2 names", decoded.Defined)
	}
	if len(decoded.Imports) != 1 || decoded.Imports[0] != "os" {
		t.Errorf("imports = %v, want [os]", decoded.Imports)
	}
}

// TestInitCommandE2E verifies config file creation.
func TestInitCommandE2E(t *testing.T) {
	out := filepath.Join(t.TempDir(), "carve.toml")

	err := testApp().Run([]string{"carve", "init", "-o", out})
	if err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}

	// A second run without --force refuses to overwrite.
	err = testApp().Run([]string{"carve", "init", "-o", out})
	if err == nil {
		t.Error("init over an existing file should fail without --force")
	}

	err = testApp().Run([]string{"carve", "init", "-o", out, "--force"})
	if err != nil {
		t.Errorf("init --force failed: %v", err)
	}
}

// TestVersionVariable verifies version variables are defined.
func TestVersionVariable(t *testing.T) {
	// These are set via ldflags at build time
	if version == "" {
		t.Error("version variable should have a default value")
	}
}
