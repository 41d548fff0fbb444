package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cratepub/internal/cargo"
)

// Crate describes one fixture entry in a metadata document.
type Crate struct {
	Name      string
	Version   string
	Dir       string // manifest dir relative to the workspace root
	Registry  bool   // a registry dependency rather than a local member
	NoPublish bool   // publish = false in the manifest
}

// Metadata builds a cargo-metadata-shaped document for the given crates
// rooted at root, in the given order.
func Metadata(root string, crates ...Crate) *cargo.Metadata {
	meta := &cargo.Metadata{WorkspaceRoot: root}
	for _, c := range crates {
		version := c.Version
		if version == "" {
			version = "0.1.0"
		}
		dir := c.Dir
		if dir == "" {
			dir = c.Name
		}
		p := cargo.Package{
			Name:         c.Name,
			Version:      version,
			ID:           fmt.Sprintf("path+file://%s#%s@%s", filepath.Join(root, dir), c.Name, version),
			ManifestPath: filepath.Join(root, dir, "Cargo.toml"),
		}
		if c.Registry {
			src := "registry+https://github.com/rust-lang/crates.io-index"
			p.Source = &src
		}
		if c.NoPublish {
			empty := []string{}
			p.Publish = &empty
		}
		meta.Packages = append(meta.Packages, p)
	}
	return meta
}

// WriteWorkspace lays a minimal Cargo workspace on disk: a virtual root
// manifest plus one directory with a Cargo.toml per crate. Returns the
// workspace root. Registry crates are skipped, they live outside the tree.
func WriteWorkspace(t *testing.T, crates ...Crate) string {
	t.Helper()
	root := t.TempDir()

	var members []string
	for _, c := range crates {
		if c.Registry {
			continue
		}
		dir := c.Dir
		if dir == "" {
			dir = c.Name
		}
		members = append(members, fmt.Sprintf("%q", dir))
		writeCrate(t, root, dir, c)
	}

	ws := fmt.Sprintf("[workspace]\nmembers = [%s]\nresolver = \"2\"\n", strings.Join(members, ", "))
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte(ws), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

func writeCrate(t *testing.T, root, dir string, c Crate) {
	t.Helper()
	version := c.Version
	if version == "" {
		version = "0.1.0"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[package]\nname = %q\nversion = %q\nedition = \"2021\"\n", c.Name, version)
	if c.NoPublish {
		b.WriteString("publish = false\n")
	}

	crateDir := filepath.Join(root, dir)
	if err := os.MkdirAll(filepath.Join(crateDir, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(crateDir, "Cargo.toml"), []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(crateDir, "src", "lib.rs"), []byte("// fixture\n"), 0644); err != nil {
		t.Fatal(err)
	}
}
