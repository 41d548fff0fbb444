package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"cratepub/internal/cargo"
	"cratepub/internal/workspace"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ok := true

	// Check cargo.
	fmt.Fprint(out, "Checking cargo... ")
	cargoPath, err := exec.LookPath("cargo")
	if err != nil {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintln(out, "  cargo is required. Install it from https://rustup.rs/")
		ok = false
	} else {
		fmt.Fprintf(out, "found at %s\n", cargoPath)
	}

	// Check cargo version.
	if err == nil {
		fmt.Fprint(out, "Checking cargo version... ")
		ver, verr := cargo.Version()
		if verr != nil {
			fmt.Fprintln(out, "ERROR")
			ok = false
		} else {
			fmt.Fprintln(out, ver)
		}
	}

	// Check registry credentials. Cargo prompts or fails without them, so
	// their absence is a warning, not a failure.
	fmt.Fprint(out, "Checking registry credentials... ")
	if hasCredentialsFile() {
		fmt.Fprintln(out, "found")
	} else {
		fmt.Fprintln(out, "none (run `cargo login` before publishing)")
	}

	// Check workspace metadata if run inside a workspace.
	root, _ := cmd.Flags().GetString("root")
	ctx, loadErr := workspace.Load(root, cargoRunner)
	if loadErr == nil {
		fmt.Fprintf(out, "Workspace: %s (%d local packages)\n", ctx.Root, len(ctx.Members))
		for _, m := range ctx.Members {
			if !m.Publishable() {
				fmt.Fprintf(out, "  Note: %s has publishing disabled in its manifest\n", m.Name)
			}
		}
	} else {
		fmt.Fprintln(out, "No Cargo workspace found here (skipping member checks)")
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// hasCredentialsFile looks for the cargo login token on disk. Newer cargo
// writes credentials.toml, older versions plain credentials.
func hasCredentialsFile() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	for _, name := range []string{"credentials.toml", "credentials"} {
		if _, err := os.Stat(filepath.Join(home, ".cargo", name)); err == nil {
			return true
		}
	}
	return false
}
