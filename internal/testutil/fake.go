package testutil

import (
	"cratepub/internal/cargo"
)

// Call records one FakeRunner invocation.
type Call struct {
	Op   string // "metadata", "dry-run", or "publish"
	Dir  string
	Opts cargo.PublishOpts
}

// FakeRunner is a scripted cargo.Runner that journals every invocation, so
// tests can assert ordering and directories without a Rust toolchain.
type FakeRunner struct {
	Meta       *cargo.Metadata
	MetaErr    error
	DryRunRes  cargo.Result
	PublishRes cargo.Result

	Calls []Call
}

func (f *FakeRunner) QueryWorkspace(root string) (*cargo.Metadata, error) {
	f.Calls = append(f.Calls, Call{Op: "metadata", Dir: root})
	if f.MetaErr != nil {
		return nil, f.MetaErr
	}
	return f.Meta, nil
}

func (f *FakeRunner) DryRunPublish(dir string, opts cargo.PublishOpts) cargo.Result {
	f.Calls = append(f.Calls, Call{Op: "dry-run", Dir: dir, Opts: opts})
	return f.DryRunRes
}

func (f *FakeRunner) Publish(dir string, opts cargo.PublishOpts) cargo.Result {
	f.Calls = append(f.Calls, Call{Op: "publish", Dir: dir, Opts: opts})
	return f.PublishRes
}

// Ops returns the journal's operation names in call order.
func (f *FakeRunner) Ops() []string {
	ops := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		ops[i] = c.Op
	}
	return ops
}
