// Package main provides the entry point for the storefront CLI tool.
package main

import "github.com/storekit/storefront/cmd/storefront/cmd"

// Version information populated by the build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
