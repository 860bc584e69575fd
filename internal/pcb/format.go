// Package pcb decodes the XZZ PCB container format: a plaintext block
// directory whose type-0x07 entries carry DES-ECB ciphertext, optionally
// hidden behind a single-byte XOR mask over the front of the file.
package pcb

const (
	// OffsetXORFlag is the flag byte governing the XOR obfuscation layer.
	// Zero means no layer; any other value is both the flag and the XOR key.
	OffsetXORFlag = 0x10

	// OffsetDirSize is the little-endian u32 total size of the block directory.
	OffsetDirSize = 0x40

	// OffsetDirStart is where block directory entries begin.
	OffsetDirStart = 0x44

	// BlockTypeEncrypted marks a directory entry whose payload is DES-ECB
	// ciphertext under the master key.
	BlockTypeEncrypted = 0x07

	// cipherBlockSize is the DES block size in bytes.
	cipherBlockSize = 8
)

// MasterKey is the fixed DES key shared by every encrypted block.
// Credit to @MuertoGB for recovering it.
var MasterKey = []byte{0xDC, 0xFC, 0x12, 0xAC, 0x00, 0x00, 0x00, 0x00}

// DiodeReadingsMarker is the header of the diode readings section, which is
// stored in plaintext even when the rest of the file is XOR-masked. Bytes at
// and after its position must never be XOR-treated.
var DiodeReadingsMarker = []byte{
	0x76, 0x36, 0x76, 0x36, 0x35, 0x35, 0x35, 0x76, 0x36, 0x76,
	0x36, 0x3D, 0x3D, 0x3D, 0xD7, 0xE8, 0xD6, 0xB5, 0x0A,
}

// payloadLayout describes the fixed offsets inside a decrypted block payload
// that lead to the block's label string.
type payloadLayout struct {
	// SkipOffset is where the little-endian u32 forward-skip field sits.
	SkipOffset int
	// FixedRun is the number of fixed bytes between the skip field and the
	// little-endian u32 label length.
	FixedRun int
}

// labelLayout is the layout every known container revision uses.
var labelLayout = payloadLayout{SkipOffset: 22, FixedRun: 31}
