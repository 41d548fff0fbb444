package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"cratepub/internal/ui"
	"cratepub/internal/workspace"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the workspace's local crates",
		RunE:  runList,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type memberInfo struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	ManifestPath string `json:"manifest_path"`
	Publishable  bool   `json:"publishable"`
}

func runList(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := workspace.Load(root, cargoRunner)
	if err != nil {
		return err
	}

	infos := make([]memberInfo, 0, len(ctx.Members))
	for _, m := range ctx.Members {
		infos = append(infos, memberInfo{
			Name:         m.Name,
			Version:      m.Version,
			ManifestPath: m.ManifestPath,
			Publishable:  m.Publishable(),
		})
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tbl := ui.NewTable(out, "NAME", "VERSION", "PUBLISH", "MANIFEST")
	for _, m := range infos {
		state := "yes"
		if !m.Publishable {
			state = "disabled"
		}
		tbl.Row(m.Name, m.Version, state, m.ManifestPath)
	}
	return tbl.Flush()
}
