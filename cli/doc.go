// Package cli implements the command-line interface for aji.
//
// The cli package provides:
// - Command-line argument parsing and validation
// - Recipe list and detail rendering for the terminal
// - Interactive result browsing
// - Favorites and share subcommands
package cli
