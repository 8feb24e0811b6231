// Package main provides the scylla command-line dashboard.
//
// It drives the same routed views as the web dashboard against a running
// Scylla API server and prints each view as markdown.
//
// Usage:
//
//	scylla open /reports
//	scylla reports add Home https://example.com
//	scylla diffs approve <diff-id>
//
// See --help for all available options.
package main

func main() {
	Execute()
}
