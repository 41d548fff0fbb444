// Package cargo provides a wrapper around the Cargo CLI commands used by
// cratepub. It handles the workspace metadata query and the dry-run/real
// publish invocations without depending on other internal packages.
package cargo
