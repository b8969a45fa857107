// Package humanbytes renders byte counts with binary (base-1024) unit
// prefixes, in either full (KiB, MiB, ...) or abbreviated (K, M, ...) form.
package humanbytes

import "fmt"

const (
	kibibyte uint64 = 1 << 10
	mebibyte uint64 = 1 << 20
	gibibyte uint64 = 1 << 30
	tebibyte uint64 = 1 << 40
	pebibyte uint64 = 1 << 50
	exbibyte uint64 = 1 << 60
)

// unit is one row of the unit table: sizes below limit are divided by div
// and labeled with abbrev or label.
type unit struct {
	limit  uint64
	div    uint64
	abbrev string
	label  string
}

// units is ordered by magnitude. Sizes of one exbibyte and above fall off
// the end of the table and use exbibyteUnit unconditionally.
//
//nolint:gochecknoglobals // Immutable unit table
var units = [...]unit{
	{limit: kibibyte, div: 1, abbrev: "B", label: "Bytes"},
	{limit: mebibyte, div: kibibyte, abbrev: "K", label: "KiB"},
	{limit: gibibyte, div: mebibyte, abbrev: "M", label: "MiB"},
	{limit: tebibyte, div: gibibyte, abbrev: "G", label: "GiB"},
	{limit: pebibyte, div: tebibyte, abbrev: "T", label: "TiB"},
	{limit: exbibyte, div: pebibyte, abbrev: "P", label: "PiB"},
}

// exbibyteUnit is the open-ended top of the table; there is no higher unit.
//
//nolint:gochecknoglobals // Immutable unit table
var exbibyteUnit = unit{div: exbibyte, abbrev: "E", label: "EiB"}

// Format renders size as a truncated integer quotient followed by a binary
// unit label. Unit transitions happen exactly at powers of 1024: 1048575 is
// "1023 KiB" and 1048576 is "1 MiB". No fractional output is produced.
func Format(size uint64, abbreviated bool) string {
	chosen := exbibyteUnit

	for _, u := range units {
		if size < u.limit {
			chosen = u

			break
		}
	}

	if abbreviated {
		return fmt.Sprintf("%d %s", size/chosen.div, chosen.abbrev)
	}

	return fmt.Sprintf("%d %s", size/chosen.div, chosen.label)
}
