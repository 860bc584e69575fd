package pcb

import (
	"bytes"
	"errors"
	"testing"

	commonerrors "github.com/pcbtools/go-pcb-decryptor/internal/common/errors"
)

// pkcs7Pad appends a valid PKCS#7 pad up to the cipher block size.
func pkcs7Pad(data []byte) []byte {
	pad := cipherBlockSize - len(data)%cipherBlockSize
	out := make([]byte, len(data), len(data)+pad)
	copy(out, data)
	for i := 0; i < pad; i++ {
		out = append(out, byte(pad))
	}
	return out
}

func TestDecryptBlockRoundTrip(t *testing.T) {
	codec := NewCodec()
	plaintext := []byte("board block contents")

	ciphertext, err := codec.EncryptBlock(pkcs7Pad(plaintext))
	if err != nil {
		t.Fatalf("EncryptBlock failed: %v", err)
	}
	if bytes.Equal(ciphertext, pkcs7Pad(plaintext)) {
		t.Fatal("ciphertext matches plaintext")
	}

	decrypted, err := codec.DecryptBlock(ciphertext)
	if err != nil {
		t.Fatalf("DecryptBlock failed: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestDecryptBlockAlternateKey(t *testing.T) {
	// The key is injected configuration, not a baked-in constant.
	codec := &Codec{Key: []byte("abcdefgh"), Marker: DiodeReadingsMarker}
	plaintext := []byte("exactly-16-bytes")

	ciphertext, err := codec.EncryptBlock(plaintext)
	if err != nil {
		t.Fatalf("EncryptBlock failed: %v", err)
	}
	decrypted, err := codec.DecryptBlock(ciphertext)
	if err != nil {
		t.Fatalf("DecryptBlock failed: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestDecryptBlockInvalidPaddingFallsBack(t *testing.T) {
	codec := NewCodec()

	// Final byte 0x09 exceeds the block size, so no valid pad exists and
	// the raw decrypted bytes must come back untouched.
	plaintext := []byte{1, 2, 3, 4, 5, 6, 7, 0x09}
	ciphertext, err := codec.EncryptBlock(plaintext)
	if err != nil {
		t.Fatalf("EncryptBlock failed: %v", err)
	}
	decrypted, err := codec.DecryptBlock(ciphertext)
	if err != nil {
		t.Fatalf("DecryptBlock failed: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("invalid padding was not kept raw: got %v, want %v", decrypted, plaintext)
	}

	// Inconsistent pad bytes: claims 3 but only the last byte matches.
	plaintext = []byte{1, 2, 3, 4, 5, 0x01, 0x02, 0x03}
	ciphertext, err = codec.EncryptBlock(plaintext)
	if err != nil {
		t.Fatalf("EncryptBlock failed: %v", err)
	}
	decrypted, err = codec.DecryptBlock(ciphertext)
	if err != nil {
		t.Fatalf("DecryptBlock failed: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("inconsistent padding was not kept raw: got %v, want %v", decrypted, plaintext)
	}
}

func TestDecryptBlockValidPaddingIsStripped(t *testing.T) {
	codec := NewCodec()

	// A full block of 0x08 is a valid pad over an empty payload.
	plaintext := bytes.Repeat([]byte{0x08}, cipherBlockSize)
	ciphertext, err := codec.EncryptBlock(plaintext)
	if err != nil {
		t.Fatalf("EncryptBlock failed: %v", err)
	}
	decrypted, err := codec.DecryptBlock(ciphertext)
	if err != nil {
		t.Fatalf("DecryptBlock failed: %v", err)
	}
	if len(decrypted) != 0 {
		t.Errorf("got %d bytes after unpadding, want 0", len(decrypted))
	}
}

func TestDecryptBlockRejectsPartialBlock(t *testing.T) {
	codec := NewCodec()
	if _, err := codec.DecryptBlock(make([]byte, 13)); !errors.Is(err, commonerrors.ErrBadCiphertext) {
		t.Fatalf("got %v, want ErrBadCiphertext", err)
	}
}

func TestDecryptBlockRejectsBadKey(t *testing.T) {
	codec := &Codec{Key: []byte("short"), Marker: DiodeReadingsMarker}
	if _, err := codec.DecryptBlock(make([]byte, 8)); !errors.Is(err, commonerrors.ErrBadKeySize) {
		t.Fatalf("got %v, want ErrBadKeySize", err)
	}
}
