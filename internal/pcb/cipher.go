package pcb

import (
	"crypto/des"
	"fmt"

	commonerrors "github.com/pcbtools/go-pcb-decryptor/internal/common/errors"
)

// DecryptBlock decrypts one encrypted block payload with the codec's key
// (DES in ECB mode, no IV) and strips PKCS#7 padding when present.
//
// Known quirk, preserved from the format: malformed padding is not an error.
// When the final bytes do not form valid PKCS#7 padding the block is assumed
// to carry none, and the raw decrypted bytes are returned as-is. Decryption
// itself cannot detect a wrong key; it always produces output.
func (c *Codec) DecryptBlock(ciphertext []byte) ([]byte, error) {
	block, err := des.NewCipher(c.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", commonerrors.ErrBadKeySize, err)
	}
	if len(ciphertext)%cipherBlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", commonerrors.ErrBadCiphertext, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += cipherBlockSize {
		block.Decrypt(plaintext[i:i+cipherBlockSize], ciphertext[i:i+cipherBlockSize])
	}
	return stripPKCS7(plaintext), nil
}

// EncryptBlock is the inverse of DecryptBlock over already-padded input. The
// decoder itself never encrypts; this exists so round-trips can be verified
// against the fixed key.
func (c *Codec) EncryptBlock(plaintext []byte) ([]byte, error) {
	block, err := des.NewCipher(c.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", commonerrors.ErrBadKeySize, err)
	}
	if len(plaintext)%cipherBlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", commonerrors.ErrBadCiphertext, len(plaintext))
	}

	ciphertext := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i += cipherBlockSize {
		block.Encrypt(ciphertext[i:i+cipherBlockSize], plaintext[i:i+cipherBlockSize])
	}
	return ciphertext, nil
}

// stripPKCS7 removes PKCS#7 padding if the tail of data forms a valid pad,
// and returns data unchanged otherwise.
func stripPKCS7(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	pad := int(data[len(data)-1])
	if pad == 0 || pad > cipherBlockSize || pad > len(data) {
		return data
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return data
		}
	}
	return data[:len(data)-pad]
}
