package cargo

// Result carries the outcome of one publish-tool invocation. Output holds
// the combined stdout and stderr exactly as the tool emitted it.
type Result struct {
	Success bool
	Output  string
}

// PublishOpts are the pass-through options for a publish invocation.
type PublishOpts struct {
	Registry   string
	AllowDirty bool
}

// Runner abstracts the external cargo invocations so the publish workflow
// can be exercised against a fake in tests.
type Runner interface {
	// QueryWorkspace runs the no-deps metadata query for the workspace at root.
	QueryWorkspace(root string) (*Metadata, error)
	// DryRunPublish runs a validation-only publish from dir.
	DryRunPublish(dir string, opts PublishOpts) Result
	// Publish runs the real publish from dir.
	Publish(dir string, opts PublishOpts) Result
}
