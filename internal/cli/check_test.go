package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodReadme = `# Project Name
A small tool that scores README files for completeness and style.
## Installation
` + "```sh" + `
go install example.com/tool@latest
` + "```" + `
## Usage
` + "```sh" + `
tool README.md
` + "```" + `
## License
MIT
`

// runCommand executes the root command with the given arguments and returns
// its combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(BuildInfo{Version: "test", Commit: "none", Date: "unknown"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeReadme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckDefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("README.md", []byte(goodReadme), 0o644))

	out, err := runCommand(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "Score")
}

func TestCheckExplicitPath(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeReadme(t, goodReadme)

	out, err := runCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
}

func TestCheckJSONOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeReadme(t, goodReadme)

	out, err := runCommand(t, "check", "--format", "json", path)
	require.NoError(t, err)

	var output struct {
		Version string `json:"version"`
		Files   []struct {
			Path    string  `json:"path"`
			Percent float64 `json:"percent"`
			Grade   string  `json:"grade"`
			Total   int     `json:"total"`
			Max     int     `json:"max"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 1)
	assert.Equal(t, path, output.Files[0].Path)
	assert.Equal(t, 113, output.Files[0].Max)
	assert.Equal(t, 87, output.Files[0].Total)
	assert.Equal(t, "B", output.Files[0].Grade)
}

func TestCheckMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "check", "no-such-file.md")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputUnavailable)
	assert.Equal(t, ExitIOError, ExitCodeFromError(err))
}

func TestCheckBelowThreshold(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeReadme(t, "hello\n")

	out, err := runCommand(t, "check", "--min-score", "90", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBelowThreshold)
	assert.Equal(t, ExitBelowThreshold, ExitCodeFromError(err))

	// The report is still rendered before the threshold failure.
	assert.Contains(t, out, "Score")
}

func TestCheckMeetsThreshold(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeReadme(t, goodReadme)

	_, err := runCommand(t, "check", "--min-score", "50", path)
	require.NoError(t, err)
}

func TestCheckUnknownFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeReadme(t, goodReadme)

	_, err := runCommand(t, "check", "--format", "xml", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Equal(t, ExitConfigError, ExitCodeFromError(err))
}

func TestCheckExplicitConfigMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeReadme(t, goodReadme)

	_, err := runCommand(t, "check", "--config", "no-such-config.yml", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestCheckUsesProjectConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".readmecheck.yml", []byte("format: json\n"), 0o644))
	path := writeReadme(t, goodReadme)

	out, err := runCommand(t, "check", path)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "expected JSON output, got: %s", out)
}

func TestCheckColorFromConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".readmecheck.yml", []byte("color: always\n"), 0o644))
	path := writeReadme(t, goodReadme)

	out, err := runCommand(t, "check", path)
	require.NoError(t, err)

	// The colorized gradient bar, not the plain ASCII one.
	assert.Contains(t, out, "█")
	assert.NotContains(t, out, "[#")
}

func TestCheckColorFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("READMECHECK_COLOR", "always")
	path := writeReadme(t, goodReadme)

	out, err := runCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "█")
}

func TestCheckColorFlagBeatsConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".readmecheck.yml", []byte("color: always\n"), 0o644))
	path := writeReadme(t, goodReadme)

	out, err := runCommand(t, "check", "--color", "never", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "█")
	assert.Contains(t, out, "[#")
}

func TestCheckOnlyFailing(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeReadme(t, goodReadme)

	out, err := runCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Title")

	out, err = runCommand(t, "check", "--only-failing", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "✓ Title")
	assert.Contains(t, out, "✗")
}

func TestCheckMultiplePaths(t *testing.T) {
	t.Chdir(t.TempDir())
	first := writeReadme(t, goodReadme)
	second := writeReadme(t, "# Other\n")

	out, err := runCommand(t, "check", first, second)
	require.NoError(t, err)
	assert.Contains(t, out, first)
	assert.Contains(t, out, second)
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "below threshold", err: ErrBelowThreshold, want: ExitBelowThreshold},
		{name: "input unavailable", err: ErrInputUnavailable, want: ExitIOError},
		{name: "config", err: ErrConfig, want: ExitConfigError},
		{name: "wrapped input", err: fmt.Errorf("read: %w", ErrInputUnavailable), want: ExitIOError},
		{name: "joined config", err: errors.Join(ErrConfig, errors.New("bad yaml")), want: ExitConfigError},
		{name: "unknown", err: errors.New("boom"), want: ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}
