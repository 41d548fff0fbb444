package main

import (
	"github.com/spf13/cobra"

	"cratepub/internal/config"
	"cratepub/internal/logging"
	"cratepub/internal/publisher"
)

func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Validate and publish one workspace crate",
		Long: `Publish lists the workspace's local crates, asks which one to publish,
runs a validation-only dry run from that crate's directory, and on success
publishes it for real. The first failing step stops the run.`,
		RunE: runPublish,
	}
	cmd.Flags().StringP("package", "p", "", "Crate to publish (skips the prompt)")
	cmd.Flags().String("registry", "", "Registry to publish to (default: crates.io)")
	cmd.Flags().Bool("allow-dirty", false, "Allow publishing from a dirty working tree")
	cmd.Flags().Bool("dry-run-only", false, "Stop after the dry-run validation")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func runPublish(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	pkgName, _ := cmd.Flags().GetString("package")
	registry, _ := cmd.Flags().GetString("registry")
	allowDirty, _ := cmd.Flags().GetBool("allow-dirty")
	dryRunOnly, _ := cmd.Flags().GetBool("dry-run-only")
	yes, _ := cmd.Flags().GetBool("yes")

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	if pkgName == "" {
		pkgName = cfg.DefaultPackage
	}
	if registry == "" {
		registry = cfg.Registry
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	deps := publisher.Deps{
		Runner: cargoRunner,
		Out:    cmd.OutOrStdout(),
		Log:    log,
		Select: selectPackage,
	}
	if !yes && !dryRunOnly {
		deps.Confirm = confirmPublish
	}

	return publisher.Run(publisher.Options{
		Root:       root,
		Package:    pkgName,
		Registry:   registry,
		AllowDirty: allowDirty || cfg.AllowDirty,
		DryRunOnly: dryRunOnly,
	}, deps)
}
