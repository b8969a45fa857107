// Package cli implements the dir-size command-line interface.
package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// options holds the parsed command-line flags and positional arguments.
type options struct {
	bytes       bool
	abbreviated bool
	maxSize     uint64
	paths       []string
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		dir-size reports the total size of files and directory trees.

		Usage:

			dir-size [flags] [path...]

		Positional Arguments:
		  path                   Files or directories to measure. Defaults to the current directory.

		Directories are walked recursively and in parallel. Symbolic links are
		never followed. Subdirectories that cannot be read count as zero bytes;
		only a path that cannot be measured at all is an error.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		opts       options
		maxSizeStr string
		version    bool
	)

	pflag.BoolVarP(&opts.bytes, "bytes", "b", false, "Print sizes as raw byte counts")
	pflag.BoolVarP(&opts.abbreviated, "abbreviated", "a", false, "Use abbreviated unit labels (K, M, G)")
	pflag.StringVar(&maxSizeStr, "max-size", "", "Fail if any path exceeds this size (e.g., 1GB)")
	pflag.BoolVarP(&version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	// Parse maxSize string to bytes
	if maxSizeStr != "" {
		size, err := humanize.ParseBytes(maxSizeStr)
		if err != nil {
			return fmt.Errorf("invalid max-size: %w", err)
		}

		opts.maxSize = size
	}

	if pflag.NArg() == 0 {
		opts.paths = []string{"."}
	} else {
		opts.paths = pflag.Args()
	}

	return logic(opts)
}
