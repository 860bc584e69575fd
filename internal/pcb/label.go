package pcb

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	commonerrors "github.com/pcbtools/go-pcb-decryptor/internal/common/errors"
)

// ExtractLabel recovers the human-readable label embedded in a decrypted
// block payload. The layout is fixed: a little-endian u32 forward skip at
// offset 22, a 31-byte fixed run, then a little-endian u32 label length and
// that many UTF-8 bytes.
//
// The label becomes part of an output filename, so both an out-of-range
// length and invalid UTF-8 are hard failures rather than best-effort
// truncations.
func ExtractLabel(plaintext []byte) (string, error) {
	cursor := labelLayout.SkipOffset
	if cursor+4 > len(plaintext) {
		return "", fmt.Errorf("%w: payload of %d bytes has no skip field",
			commonerrors.ErrLabelParse, len(plaintext))
	}
	skip := binary.LittleEndian.Uint32(plaintext[cursor:])
	cursor += 4 + int(skip) + labelLayout.FixedRun

	if cursor < 0 || cursor+4 > len(plaintext) {
		return "", fmt.Errorf("%w: label length field at %d is outside the %d-byte payload",
			commonerrors.ErrLabelParse, cursor, len(plaintext))
	}
	labelLen := binary.LittleEndian.Uint32(plaintext[cursor:])
	cursor += 4

	if int(labelLen) > len(plaintext)-cursor {
		return "", fmt.Errorf("%w: label of %d bytes exceeds remaining payload of %d",
			commonerrors.ErrLabelParse, labelLen, len(plaintext)-cursor)
	}
	label := plaintext[cursor : cursor+int(labelLen)]
	if !utf8.Valid(label) {
		return "", fmt.Errorf("%w: label bytes are not valid UTF-8", commonerrors.ErrLabelParse)
	}
	return string(label), nil
}
