package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// ExtractBzip2 decompresses a BZIP2 stream held in memory
func ExtractBzip2(data []byte) ([]byte, error) {
	bzReader, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bzip2 stream: %w", err)
	}
	defer bzReader.Close()

	out, err := io.ReadAll(bzReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress bzip2 stream: %w", err)
	}
	return out, nil
}
