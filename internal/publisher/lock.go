package publisher

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = "cratepub.lock"

// acquireLock takes an exclusive lock on the workspace so two publish runs
// cannot race against the same tree. The returned func releases it.
func acquireLock(root string) (func(), error) {
	fl := flock.New(filepath.Join(root, lockFileName))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring workspace lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another cratepub run holds the workspace lock")
	}
	return func() { _ = fl.Unlock() }, nil
}
