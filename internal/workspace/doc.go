// Package workspace resolves a Cargo workspace into its publishable member
// listing. It provides the Context type that holds the resolved root and the
// local packages in provider order, with exact-match lookup by name.
package workspace
