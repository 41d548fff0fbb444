package publisher

import "fmt"

// Kind classifies a terminal workflow failure.
type Kind int

const (
	// KindEnvironment covers metadata query and workspace locking failures.
	KindEnvironment Kind = iota + 1
	// KindInput is an empty or aborted selection.
	KindInput
	// KindNotFound is a selected name with no matching package.
	KindNotFound
	// KindValidation is a failed dry-run publish, or a crate that forbids
	// publishing in its manifest.
	KindValidation
	// KindPublish is a failed real publish.
	KindPublish
)

// ExitCode returns the process exit code for this failure kind. Codes are
// distinct so callers can tell environment problems from publish rejections.
func (k Kind) ExitCode() int {
	switch k {
	case KindEnvironment:
		return 2
	case KindInput:
		return 3
	case KindNotFound:
		return 4
	case KindValidation:
		return 5
	case KindPublish:
		return 6
	}
	return 1
}

func (k Kind) String() string {
	switch k {
	case KindEnvironment:
		return "environment"
	case KindInput:
		return "input"
	case KindNotFound:
		return "not-found"
	case KindValidation:
		return "validation"
	case KindPublish:
		return "publish"
	}
	return "unknown"
}

// Error is a terminal workflow failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
