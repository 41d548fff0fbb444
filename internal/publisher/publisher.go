package publisher

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"cratepub/internal/cargo"
	"cratepub/internal/ui"
	"cratepub/internal/workspace"
)

// Options configures one publish run.
type Options struct {
	Root       string
	Package    string // empty consults Deps.Select
	Registry   string
	AllowDirty bool
	DryRunOnly bool
}

// Selector asks the user for a package name given the listed member names.
// Consulted only when Options.Package is empty.
type Selector func(names []string) (string, error)

// Confirmer asks the user to approve the real publish.
// A nil Confirmer approves unconditionally.
type Confirmer func(name string) (bool, error)

// Deps are the collaborators of a publish run.
type Deps struct {
	Runner  cargo.Runner
	Out     io.Writer
	Log     *zap.Logger
	Select  Selector
	Confirm Confirmer
}

// Run drives the workflow: list, select, resolve, dry-run, publish. The
// target crate directory is threaded into each tool invocation, the process
// working directory is never changed.
func Run(opts Options, deps Deps) error {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	out := deps.Out

	ws, err := workspace.Load(opts.Root, deps.Runner)
	if err != nil {
		return &Error{Kind: KindEnvironment, Msg: "listing workspace packages", Err: err}
	}
	if len(ws.Members) == 0 {
		return errf(KindEnvironment, "workspace at %s has no local packages", ws.Root)
	}

	ui.Header(out, "Workspace members:")
	for _, name := range ws.Names() {
		fmt.Fprintln(out, name)
	}

	name := opts.Package
	if name == "" {
		if deps.Select == nil {
			return errf(KindInput, "no package selected")
		}
		name, err = deps.Select(ws.Names())
		if err != nil {
			return &Error{Kind: KindInput, Msg: "reading package selection", Err: err}
		}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errf(KindInput, "no package selected")
	}

	pkg, ok := ws.Lookup(name)
	if !ok {
		return errf(KindNotFound, "package %q not found in workspace", name)
	}
	if !pkg.Publishable() {
		return errf(KindValidation, "package %q has publishing disabled in its manifest", name)
	}

	dir := pkg.Dir()
	ui.Target(out, pkg.Name)
	log.Info("resolved target",
		zap.String("package", pkg.Name),
		zap.String("version", pkg.Version),
		zap.String("dir", dir))

	unlock, err := acquireLock(ws.Root)
	if err != nil {
		return &Error{Kind: KindEnvironment, Msg: "locking workspace", Err: err}
	}
	defer unlock()

	popts := cargo.PublishOpts{Registry: opts.Registry, AllowDirty: opts.AllowDirty}
	total := 2
	if opts.DryRunOnly {
		total = 1
	}
	steps := ui.NewSteps(out, total)

	log.Debug("dry-run publish", zap.String("dir", dir))
	res := deps.Runner.DryRunPublish(dir, popts)
	if !res.Success {
		ui.Failure(out, fmt.Sprintf("dry-run failed for %s", pkg.Name), res.Output)
		log.Error("dry-run failed", zap.String("package", pkg.Name))
		return errf(KindValidation, "dry-run publish failed for %q", pkg.Name)
	}
	steps.Done("dry-run ok: " + pkg.Name)

	if opts.DryRunOnly {
		ui.Success(out, "dry run only: skipped publishing %s", pkg.Name)
		return nil
	}

	if deps.Confirm != nil {
		approved, err := deps.Confirm(pkg.Name)
		if err != nil {
			return &Error{Kind: KindInput, Msg: "reading confirmation", Err: err}
		}
		if !approved {
			return errf(KindInput, "publish of %q canceled", pkg.Name)
		}
	}

	log.Debug("publish", zap.String("dir", dir))
	res = deps.Runner.Publish(dir, popts)
	if !res.Success {
		ui.Failure(out, fmt.Sprintf("publish failed for %s", pkg.Name), res.Output)
		log.Error("publish failed", zap.String("package", pkg.Name))
		return errf(KindPublish, "publish failed for %q", pkg.Name)
	}
	steps.Done(fmt.Sprintf("published %s %s", pkg.Name, pkg.Version))
	ui.Success(out, "successfully published %s", pkg.Name)
	log.Info("published", zap.String("package", pkg.Name), zap.String("version", pkg.Version))
	return nil
}
