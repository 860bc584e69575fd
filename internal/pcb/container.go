package pcb

import (
	"fmt"
)

// ExtractedBlock is one decrypted encrypted-block payload together with the
// label parsed out of it. Index counts encrypted blocks only, in file order.
type ExtractedBlock struct {
	Index int
	Label string
	Data  []byte
}

// ExtractBlocks deobfuscates the container, walks its directory, and
// decrypts every encrypted block, returning each with its parsed label.
// Any label that fails to parse aborts the whole operation; a garbled label
// would otherwise end up in an output path.
func (c *Codec) ExtractBlocks(data []byte) ([]ExtractedBlock, error) {
	plain, err := c.Deobfuscate(data)
	if err != nil {
		return nil, err
	}
	blocks, err := Walk(plain)
	if err != nil {
		return nil, err
	}

	var out []ExtractedBlock
	for _, b := range blocks {
		if !b.Encrypted() {
			continue
		}
		decrypted, err := c.DecryptBlock(plain[b.Start:b.End])
		if err != nil {
			return nil, fmt.Errorf("block at 0x%x: %w", b.Start, err)
		}
		label, err := ExtractLabel(decrypted)
		if err != nil {
			return nil, fmt.Errorf("block at 0x%x: %w", b.Start, err)
		}
		out = append(out, ExtractedBlock{Index: len(out), Label: label, Data: decrypted})
	}
	return out, nil
}

// DecryptContainer deobfuscates the container and rebuilds it with every
// encrypted block payload replaced by its decrypted bytes. All block
// boundaries come from a single walk over the unmodified buffer, taken
// before any splicing.
//
// Stripping padding normally leaves the payload the same length as its
// ciphertext minus the pad; when a decrypted payload does differ in length,
// later content in the output shifts by the difference. The indexes of such
// blocks are returned so callers can flag them.
func (c *Codec) DecryptContainer(data []byte) ([]byte, []int, error) {
	plain, err := c.Deobfuscate(data)
	if err != nil {
		return nil, nil, err
	}
	blocks, err := Walk(plain)
	if err != nil {
		return nil, nil, err
	}

	out := make([]byte, 0, len(plain))
	var shrunk []int
	cursor := 0
	encIndex := 0
	for _, b := range blocks {
		if !b.Encrypted() {
			continue
		}
		decrypted, err := c.DecryptBlock(plain[b.Start:b.End])
		if err != nil {
			return nil, nil, fmt.Errorf("block at 0x%x: %w", b.Start, err)
		}
		if len(decrypted) != b.Size() {
			shrunk = append(shrunk, encIndex)
		}
		out = append(out, plain[cursor:b.Start]...)
		out = append(out, decrypted...)
		cursor = b.End
		encIndex++
	}
	out = append(out, plain[cursor:]...)
	return out, shrunk, nil
}
