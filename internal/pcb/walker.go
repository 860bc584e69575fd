package pcb

import (
	"encoding/binary"
	"fmt"

	commonerrors "github.com/pcbtools/go-pcb-decryptor/internal/common/errors"
)

// Block is one entry of the container's block directory. Start and End bound
// the payload within the container buffer; the 5-byte entry header sits
// immediately before Start.
type Block struct {
	Type  byte
	Start int
	End   int
}

// Size returns the payload length in bytes.
func (b Block) Size() int {
	return b.End - b.Start
}

// Encrypted reports whether the payload is ciphertext under the master key.
func (b Block) Encrypted() bool {
	return b.Type == BlockTypeEncrypted
}

// Walk parses the block directory and returns every entry in file order.
// Entries carry no offsets of their own; each payload position is the
// accumulation of the 1+4+length strides of all prior entries.
//
// A directory length inconsistent with the entry strides, or any read that
// would cross the physical end of the buffer, is a malformed container.
// Walk never truncates or returns partial results.
func Walk(data []byte) ([]Block, error) {
	if len(data) < OffsetDirStart {
		return nil, fmt.Errorf("%w: %d bytes, directory header needs %d",
			commonerrors.ErrContainerTooSmall, len(data), OffsetDirStart)
	}

	dirSize := binary.LittleEndian.Uint32(data[OffsetDirSize:])
	dirEnd := OffsetDirStart + int(dirSize)
	if dirEnd > len(data) {
		return nil, fmt.Errorf("%w: directory claims %d bytes but the file holds %d",
			commonerrors.ErrMalformedContainer, dirEnd, len(data))
	}

	var blocks []Block
	ptr := OffsetDirStart
	for ptr < dirEnd {
		if ptr+5 > len(data) {
			return nil, fmt.Errorf("%w: entry header at 0x%x crosses end of file",
				commonerrors.ErrMalformedContainer, ptr)
		}
		blockType := data[ptr]
		blockSize := binary.LittleEndian.Uint32(data[ptr+1:])
		ptr += 5

		end := ptr + int(blockSize)
		if end > len(data) {
			return nil, fmt.Errorf("%w: block at 0x%x claims %d bytes past end of file",
				commonerrors.ErrMalformedContainer, ptr, blockSize)
		}
		blocks = append(blocks, Block{Type: blockType, Start: ptr, End: end})
		ptr = end
	}
	return blocks, nil
}
