package pcb

import (
	"bytes"
	"fmt"

	commonerrors "github.com/pcbtools/go-pcb-decryptor/internal/common/errors"
)

// Deobfuscate reverses the container's single-byte XOR mask and returns the
// result as a new buffer. The flag byte at OffsetXORFlag selects the
// behavior: zero means no mask was applied and the input is returned
// unchanged; any other value is the XOR key for every byte before the first
// occurrence of the codec's marker (or for the whole buffer when the marker
// is absent).
//
// XOR is its own inverse, so calling Deobfuscate twice on masked data
// re-masks it. Callers must invoke it exactly once per container.
func (c *Codec) Deobfuscate(data []byte) ([]byte, error) {
	if len(data) <= OffsetXORFlag {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d",
			commonerrors.ErrContainerTooSmall, len(data), OffsetXORFlag+1)
	}

	key := data[OffsetXORFlag]
	if key == 0x00 {
		return data, nil
	}

	out := make([]byte, len(data))
	copy(out, data)

	// The marker is searched over the whole buffer, not just the directory:
	// the diode readings section sits past the directory and is already
	// plaintext.
	bound := len(out)
	if p := bytes.Index(out, c.Marker); p != -1 {
		bound = p
	}

	for i := 0; i < bound; i++ {
		out[i] ^= key
	}
	return out, nil
}
