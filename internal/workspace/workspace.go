package workspace

import (
	"fmt"
	"path/filepath"

	"cratepub/internal/cargo"
)

// Context holds the resolved workspace root and its local member listing.
type Context struct {
	Root    string
	Members []cargo.Package
}

// Load queries workspace metadata through the runner and filters to local
// packages (source == null), preserving the provider's output order.
func Load(root string, runner cargo.Runner) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	meta, err := runner.QueryWorkspace(root)
	if err != nil {
		return nil, fmt.Errorf("querying workspace metadata: %w", err)
	}

	ctx := &Context{Root: root}
	seen := make(map[string]bool, len(meta.Packages))
	for _, p := range meta.Packages {
		if !p.IsLocal() {
			continue
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("workspace lists package %q more than once", p.Name)
		}
		seen[p.Name] = true
		ctx.Members = append(ctx.Members, p)
	}
	return ctx, nil
}

// Lookup returns the member with the given name. Matching is exact string
// equality, never fuzzy or case-insensitive.
func (c *Context) Lookup(name string) (cargo.Package, bool) {
	for _, m := range c.Members {
		if m.Name == name {
			return m, true
		}
	}
	return cargo.Package{}, false
}

// Names returns the member names in listing order.
func (c *Context) Names() []string {
	names := make([]string, len(c.Members))
	for i, m := range c.Members {
		names[i] = m.Name
	}
	return names
}
