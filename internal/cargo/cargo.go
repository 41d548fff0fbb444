package cargo

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// CLI is the Runner backed by the real cargo binary.
type CLI struct{}

// NewCLI returns a Runner that shells out to cargo.
func NewCLI() *CLI {
	return &CLI{}
}

// QueryWorkspace invokes `cargo metadata --no-deps --format-version 1` for
// the workspace at root.
func (c *CLI) QueryWorkspace(root string) (*Metadata, error) {
	out, err := output(root, "metadata", "--no-deps", "--format-version", "1")
	if err != nil {
		return nil, err
	}
	return ParseMetadata([]byte(out))
}

// DryRunPublish invokes `cargo publish --dry-run` from dir.
func (c *CLI) DryRunPublish(dir string, opts PublishOpts) Result {
	return combined(dir, publishArgs(opts, true)...)
}

// Publish invokes `cargo publish` from dir.
func (c *CLI) Publish(dir string, opts PublishOpts) Result {
	return combined(dir, publishArgs(opts, false)...)
}

func publishArgs(opts PublishOpts, dryRun bool) []string {
	args := []string{"publish"}
	if dryRun {
		args = append(args, "--dry-run")
	}
	if opts.AllowDirty {
		args = append(args, "--allow-dirty")
	}
	if opts.Registry != "" {
		args = append(args, "--registry", opts.Registry)
	}
	return args
}

// combined executes a cargo command and captures stdout and stderr together,
// preserving the tool's own interleaving.
func combined(dir string, args ...string) Result {
	cmd := exec.Command("cargo", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return Result{Success: err == nil, Output: string(out)}
}

// output executes a cargo command and returns its stdout.
// Stderr is folded into the error message on failure.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("cargo", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("cargo %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Version returns the `cargo version` banner line.
func Version() (string, error) {
	out, err := output(".", "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
