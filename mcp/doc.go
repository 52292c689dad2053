// Package mcp implements the Model Context Protocol server for aji.
//
// The mcp package provides:
// - MCP server implementation for external tool integration
// - Recipe search and detail tools for MCP clients
// - Read-only access to the local favorites file
package mcp
