package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	dirsize "github.com/Integral-Tech/dir-size"
	"github.com/Integral-Tech/dir-size/internal/humanbytes"
)

func logic(opts options) error {
	enableProgress := !opts.bytes && isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes uint64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes uint64) {
			msg := fmt.Sprintf("Scanning… %d files, %s", files, humanize.IBytes(bytes))
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	var overLimit []string

	for _, path := range opts.paths {
		rendered, size, err := measure(ctx, path, opts, progressHook)

		// Clear the status line
		if enableProgress {
			fmt.Fprint(os.Stderr, "\r\033[2K\r")
		}

		if err != nil {
			return err
		}

		//nolint:forbidigo // Result output to console
		fmt.Printf("%s\t%s\n", rendered, path)

		if opts.maxSize > 0 && size > opts.maxSize {
			overLimit = append(overLimit, path)
		}
	}

	if len(overLimit) > 0 {
		return fmt.Errorf("size limit %s exceeded by: %s",
			humanize.IBytes(opts.maxSize), strings.Join(overLimit, ", "))
	}

	return nil
}

// measure computes the size of one path and renders it per the output flags.
func measure(ctx context.Context, path string, opts options, progressHook func(files, bytes uint64)) (string, uint64, error) {
	size, err := dirsize.Size(ctx, path, progressHook)
	if err != nil {
		return "", 0, err
	}

	if opts.bytes {
		return strconv.FormatUint(size, 10), size, nil
	}

	return humanbytes.Format(size, opts.abbreviated), size, nil
}
