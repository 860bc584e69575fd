package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// ExtractXZ decompresses an XZ stream held in memory
func ExtractXZ(data []byte) ([]byte, error) {
	xzReader, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xz stream: %w", err)
	}

	out, err := io.ReadAll(xzReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress xz stream: %w", err)
	}
	return out, nil
}
