// Package compression detects and unwraps stream compression around a
// container file. Detection is by magic bytes only; extensions are ignored
// because board files circulate with arbitrary names.
package compression

import (
	"bytes"
)

// Format identifies a supported stream compression format
type Format string

const (
	FormatNone  Format = "none"
	FormatGzip  Format = "gzip"
	FormatXZ    Format = "xz"
	FormatBzip2 Format = "bzip2"
)

var (
	magicGzip  = []byte{0x1F, 0x8B}
	magicXZ    = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	magicBzip2 = []byte{'B', 'Z', 'h'}
)

// Detect identifies the compression format wrapping data, or FormatNone.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicXZ):
		return FormatXZ
	case bytes.HasPrefix(data, magicGzip):
		return FormatGzip
	case bytes.HasPrefix(data, magicBzip2):
		return FormatBzip2
	default:
		return FormatNone
	}
}

// Decompress unwraps data if it is compressed in a supported format, and
// returns it unchanged otherwise. The returned Format reports what was found.
func Decompress(data []byte) ([]byte, Format, error) {
	format := Detect(data)
	switch format {
	case FormatGzip:
		out, err := ExtractGzip(data)
		return out, format, err
	case FormatXZ:
		out, err := ExtractXZ(data)
		return out, format, err
	case FormatBzip2:
		out, err := ExtractBzip2(data)
		return out, format, err
	default:
		return data, FormatNone, nil
	}
}
