//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b": Build,
	"t": Test.Default,
	"l": Lint.Default,
	"c": Check,
	"i": Install,
}

// Namespace types group related targets.
type (
	Test st.Namespace
	Lint st.Namespace
)

// Build compiles the readmecheck binary with version info.
// Skips recompilation when source files have not changed.
func Build() error {
	rebuild, err := target.Dir("bin/readmecheck", "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println("bin/readmecheck is up to date")
		return nil
	}
	fmt.Println("Building readmecheck...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", "bin/readmecheck", "./cmd/readmecheck")
}

// Check runs format, lint, and test sequentially.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install installs readmecheck to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing readmecheck...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/readmecheck")
}

// Deps ensures all dependencies are downloaded.
func Deps() error {
	fmt.Println("Downloading dependencies...")
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Default runs all tests using gotestsum with race detection and coverage.
func (Test) Default() error {
	fmt.Println("Running tests...")
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race",
		"-p", nCores,
		"-parallel", nCores,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

// Default runs golangci-lint over the whole module.
func (Lint) Default() error {
	fmt.Println("Linting...")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go source.
func (Lint) Fmt() error {
	fmt.Println("Formatting...")
	return sh.RunV("gofmt", "-w", ".")
}

// ldflags builds the version injection flags from git state.
func ldflags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	date, _ := sh.Output("date", "-u", "+%Y-%m-%dT%H:%M:%SZ")
	return fmt.Sprintf("-s -w -X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(version, "dev"), cmp.Or(commit, "none"), cmp.Or(date, "unknown"))
}
