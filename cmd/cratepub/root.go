package main

import (
	"github.com/spf13/cobra"

	"cratepub/internal/cargo"
)

// cargoRunner is the Runner used by all commands. Tests swap in a fake.
var cargoRunner cargo.Runner = cargo.NewCLI()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cratepub",
		Short:   "Publish a single crate from a Cargo workspace",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Workspace root directory")

	cmd.AddCommand(
		newPublishCmd(),
		newListCmd(),
		newDoctorCmd(),
	)

	return cmd
}
