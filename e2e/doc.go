// Package e2e drives the compiled dicbrowse binary in a pseudo terminal.
// Run with: go test -tags e2e ./e2e
package e2e
