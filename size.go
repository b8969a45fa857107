package dirsize

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/Integral-Tech/dir-size/internal/humanbytes"
)

// collector accumulates walk results. The counters are atomic since
// fastwalk calls the walk function from multiple goroutines concurrently.
type collector struct {
	files atomic.Uint64
	bytes atomic.Uint64
}

// SizeInBytes returns the size in bytes of the entry at path.
//
// A regular file's size is its length as reported by metadata. A
// directory's size is the recursive sum of its contents, computed in
// parallel. Any other entry (symlink, device, socket) has size zero;
// symbolic links are classified without being followed.
//
// An error is returned only when path itself cannot be queried or, for a
// directory, listed. Every failure strictly below path (unreadable
// subdirectory, entry removed mid-walk) contributes zero bytes instead of
// failing the call, so the result for a partially accessible tree
// undercounts rather than errors.
func SizeInBytes(path string) (uint64, error) {
	return Size(context.Background(), path, nil)
}

// SizeInHumanBytes returns the size of the entry at path formatted with
// full binary unit labels, e.g. "2 KiB". Errors are those of SizeInBytes.
func SizeInHumanBytes(path string) (string, error) {
	size, err := SizeInBytes(path)
	if err != nil {
		return "", err
	}

	return humanbytes.Format(size, false), nil
}

// SizeInAbbreviatedHumanBytes returns the size of the entry at path
// formatted with abbreviated unit labels, e.g. "2 K". Errors are those of
// SizeInBytes.
func SizeInAbbreviatedHumanBytes(path string) (string, error) {
	size, err := SizeInBytes(path)
	if err != nil {
		return "", err
	}

	return humanbytes.Format(size, true), nil
}

// Size computes the size of the entry at path like SizeInBytes, with
// cancellation via ctx and an optional progress hook. While a directory
// walk is running, progressHook (if non-nil) is invoked with the running
// file and byte counts every DefaultProgressInterval.
func Size(ctx context.Context, path string, progressHook func(files, bytes uint64)) (uint64, error) {
	// Normalize to native format to handle both C:/Path and C:\Path inputs
	path = filepath.Clean(path)

	info, err := os.Lstat(path)
	if err != nil {
		return 0, fmt.Errorf("accessing path %q: %w", path, err)
	}

	switch {
	case info.Mode().IsRegular():
		return uint64(info.Size()), nil //nolint:gosec // Size is never negative
	case info.IsDir():
		return dirSize(ctx, path, progressHook)
	default:
		return 0, nil
	}
}

// dirSize walks root with fastwalk and sums the sizes of all regular files
// beneath it. Only a failure to read root itself is fatal; every failure
// below root is skipped silently.
func dirSize(ctx context.Context, root string, progressHook func(files, bytes uint64)) (uint64, error) {
	c := &collector{}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, c, progressHook, DefaultProgressInterval)

	// Configure fastwalk
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	// Walk directory with fastwalk (parallel traversal)
	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A read failure on the top-level directory fails the whole
			// call; anything deeper counts as zero.
			if path == root {
				return fmt.Errorf("reading directory %q: %w", root, err)
			}

			return nil // Silently skip errors
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		c.files.Add(1)
		c.bytes.Add(uint64(info.Size())) //nolint:gosec // Size is never negative

		return nil
	})
	if walkErr != nil {
		return 0, walkErr
	}

	return c.bytes.Load(), nil
}
