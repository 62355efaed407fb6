package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/readmecheck/pkg/config"
)

func TestCriteriaCommand(t *testing.T) {
	out, err := runCommand(t, "criteria")
	require.NoError(t, err)

	assert.Contains(t, out, "primary")
	assert.Contains(t, out, "extra")
	assert.Contains(t, out, "Title (10)")
	assert.Contains(t, out, "Consistent Heading Levels (2)")
	assert.Contains(t, out, "Length (10)")
	assert.Contains(t, out, "maximum score: 113")

	// Remediation text appears only with --verbose.
	assert.NotContains(t, out, "Add a project title")

	out, err = runCommand(t, "criteria", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Add a project title")
}

func TestCriteriaCommandPlainWithoutTerminal(t *testing.T) {
	// Auto color against a buffer stays plain; the writer decides, not
	// the process stdout.
	out, err := runCommand(t, "criteria", "--color", "auto")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestTocCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	readme := "# Title\n\n## Install\n\n## Usage\n\n### Flags\n"
	require.NoError(t, os.WriteFile("README.md", []byte(readme), 0o644))

	out, err := runCommand(t, "toc")
	require.NoError(t, err)

	want := "- [Install](#install)\n" +
		"- [Usage](#usage)\n" +
		"  - [Flags](#flags)\n"
	assert.Equal(t, want, out)
}

func TestTocCommandNoHeadings(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("README.md", []byte("just prose\n"), 0o644))

	_, err := runCommand(t, "toc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no headings")
}

func TestTocCommandMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "toc", "nope.md")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputUnavailable)
}

func TestInspectCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	readme := "# Demo\n\n## Setup\n\n```go\npackage main\n```\n\n```\n#!/bin/sh\necho hi\n```\n"
	require.NoError(t, os.WriteFile("README.md", []byte(readme), 0o644))

	out, err := runCommand(t, "inspect")
	require.NoError(t, err)

	assert.Contains(t, out, "Structure")
	assert.Contains(t, out, "2 headings, 2 code blocks")
	assert.Contains(t, out, "H1 Demo")
	assert.Contains(t, out, "H2 Setup")
	assert.Contains(t, out, "go")
	assert.Contains(t, out, "detected: bash")
}

func TestInitCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "init")
	require.NoError(t, err)

	data, err := os.ReadFile(".readmecheck.yml")
	require.NoError(t, err)
	assert.Equal(t, config.Template, string(data))

	// A second run refuses to clobber the file.
	_, err = runCommand(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCommand(t, "init", "--force")
	require.NoError(t, err)
}

func TestInitCommandCustomOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "init", "--output", "custom.yml")
	require.NoError(t, err)

	_, err = os.Stat("custom.yml")
	require.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "readmecheck test")
	assert.Contains(t, out, "commit: none")
	assert.Contains(t, out, "go:")
}
