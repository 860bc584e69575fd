package compression

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// ExtractGzip decompresses a GZIP stream held in memory
func ExtractGzip(data []byte) ([]byte, error) {
	gzipReader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer gzipReader.Close()

	out, err := io.ReadAll(gzipReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress gzip stream: %w", err)
	}
	return out, nil
}
