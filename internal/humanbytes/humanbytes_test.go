package humanbytes

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		size   uint64
		full   string
		abbrev string
	}{
		{0, "0 Bytes", "0 B"},
		{1, "1 Bytes", "1 B"},
		{500, "500 Bytes", "500 B"},
		{kibibyte - 1, "1023 Bytes", "1023 B"},
		{kibibyte, "1 KiB", "1 K"},
		{1536, "1 KiB", "1 K"}, // truncated, never "1.5 KiB"
		{mebibyte - 1, "1023 KiB", "1023 K"},
		{mebibyte, "1 MiB", "1 M"},
		{gibibyte - 1, "1023 MiB", "1023 M"},
		{gibibyte, "1 GiB", "1 G"},
		{tebibyte - 1, "1023 GiB", "1023 G"},
		{tebibyte, "1 TiB", "1 T"},
		{pebibyte - 1, "1023 TiB", "1023 T"},
		{pebibyte, "1 PiB", "1 P"},
		{exbibyte - 1, "1023 PiB", "1023 P"},
		{exbibyte, "1 EiB", "1 E"},
		{math.MaxUint64, "15 EiB", "15 E"},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatUint(tt.size, 10), func(t *testing.T) {
			assert.Equal(t, tt.full, Format(tt.size, false))
			assert.Equal(t, tt.abbrev, Format(tt.size, true))
		})
	}
}

// Sizes below one KiB must come out verbatim, whichever label form is used.
func TestFormatSubKibibyte(t *testing.T) {
	for size := uint64(0); size < kibibyte; size++ {
		want := strconv.FormatUint(size, 10)

		assert.Equal(t, want+" Bytes", Format(size, false))
		assert.Equal(t, want+" B", Format(size, true))
	}
}
