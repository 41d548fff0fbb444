// Package publisher drives the end-to-end publish workflow: list workspace
// members, select a target, validate it with a dry-run publish, then publish
// for real. Every failure is terminal and typed; nothing is retried.
package publisher
