// Package config handles loading and validation of the optional
// cratepub.yaml file found at the workspace root. Every field has a working
// default; a missing file is not an error.
package config
