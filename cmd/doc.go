// Package cmd implements the command-line interface for the redis-orm
// collection client. It provides a hierarchical command structure with
// operations for working with typed lists and sets on a redis server.
//
// The package is organized into several subpackages:
//
//   - list: Commands for list operations (push, pop, range, watch, etc.)
//   - set: Commands for set operations (add, remove, contains, watch)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See redis-orm -help for a list of all commands.
package cmd
