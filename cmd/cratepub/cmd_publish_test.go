package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cratepub/internal/cargo"
	"cratepub/internal/publisher"
	"cratepub/internal/testutil"
)

// swapRunner installs a fake cargo runner for the duration of a test.
func swapRunner(t *testing.T, fake cargo.Runner) {
	t.Helper()
	prev := cargoRunner
	cargoRunner = fake
	t.Cleanup(func() { cargoRunner = prev })
}

func newFakeWorkspace(t *testing.T) (string, *testutil.FakeRunner) {
	t.Helper()
	crates := []testutil.Crate{
		{Name: "a", Dir: "a"},
		{Name: "b", Dir: "b"},
	}
	root := testutil.WriteWorkspace(t, crates...)
	runner := &testutil.FakeRunner{
		Meta: testutil.Metadata(root, crates...),
		DryRunRes:  cargo.Result{Success: true},
		PublishRes: cargo.Result{Success: true},
	}
	swapRunner(t, runner)
	return root, runner
}

func TestRunPublish_withPackageFlag(t *testing.T) {
	root, runner := newFakeWorkspace(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"publish", "--root", root, "--package", "b", "--yes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"a\n", "b\n", "target: b", "successfully published b"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	ops := runner.Ops()
	if len(ops) != 3 || ops[2] != "publish" {
		t.Fatalf("ops = %v, want metadata, dry-run, publish", ops)
	}
	if want := filepath.Join(root, "b"); runner.Calls[2].Dir != want {
		t.Errorf("publish dir = %q, want %q", runner.Calls[2].Dir, want)
	}
	// The fixture tree really contains the manifest the runner was pointed at.
	if _, err := os.Stat(filepath.Join(runner.Calls[2].Dir, "Cargo.toml")); err != nil {
		t.Errorf("publish dir has no manifest: %v", err)
	}
}

func TestRunPublish_unknownPackage(t *testing.T) {
	root, runner := newFakeWorkspace(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"publish", "--root", root, "--package", "c", "--yes"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown package")
	}
	var perr *publisher.Error
	if !errors.As(err, &perr) || perr.Kind != publisher.KindNotFound {
		t.Fatalf("error = %v, want not-found kind", err)
	}
	if exitCode(err) != 4 {
		t.Errorf("exit code = %d, want 4", exitCode(err))
	}
	for _, op := range runner.Ops() {
		if op != "metadata" {
			t.Fatalf("publish tool invoked for unknown package: ops = %v", runner.Ops())
		}
	}
}

func TestRunPublish_dryRunOnly(t *testing.T) {
	root, runner := newFakeWorkspace(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"publish", "--root", root, "--package", "a", "--dry-run-only"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	for _, op := range runner.Ops() {
		if op == "publish" {
			t.Fatal("real publish invoked in dry-run-only mode")
		}
	}
	if !strings.Contains(buf.String(), "skipped publishing a") {
		t.Errorf("skip banner missing:\n%s", buf.String())
	}
}

func TestRunPublish_registryFlagPassThrough(t *testing.T) {
	root, runner := newFakeWorkspace(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"publish", "--root", root, "--package", "a", "--yes", "--registry", "internal", "--allow-dirty"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	for _, c := range runner.Calls[1:] {
		if c.Opts.Registry != "internal" || !c.Opts.AllowDirty {
			t.Errorf("%s opts = %+v, want registry=internal allow-dirty", c.Op, c.Opts)
		}
	}
}

func TestRunPublish_defaultPackageFromConfig(t *testing.T) {
	root, runner := newFakeWorkspace(t)
	cfg := "version: 1\ndefault_package: b\n"
	if err := os.WriteFile(filepath.Join(root, "cratepub.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"publish", "--root", root, "--yes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if !strings.Contains(buf.String(), "target: b") {
		t.Errorf("config default_package not used:\n%s", buf.String())
	}
	if want := filepath.Join(root, "b"); runner.Calls[1].Dir != want {
		t.Errorf("dry-run dir = %q, want %q", runner.Calls[1].Dir, want)
	}
}

func TestRunPublish_invalidConfig(t *testing.T) {
	root, _ := newFakeWorkspace(t)
	if err := os.WriteFile(filepath.Join(root, "cratepub.yaml"), []byte("version: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"publish", "--root", root, "--package", "a", "--yes"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for invalid config version")
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(errors.New("plain")); got != 1 {
		t.Errorf("plain error exit code = %d, want 1", got)
	}
	err := &publisher.Error{Kind: publisher.KindValidation, Msg: "dry-run publish failed"}
	if got := exitCode(err); got != 5 {
		t.Errorf("validation exit code = %d, want 5", got)
	}
}
