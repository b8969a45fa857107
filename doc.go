// Package dirsize computes the total size of filesystem entries.
//
// It sizes a single file or, recursively, an entire directory tree, walking
// directories in parallel with fastwalk, and renders byte counts with
// binary (base-1024) unit prefixes. Symbolic links are never followed.
// Failures below the queried path are tolerated: an unreadable
// subdirectory contributes zero bytes instead of failing the call.
package dirsize
