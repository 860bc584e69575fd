package decryptor

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	commonerrors "github.com/pcbtools/go-pcb-decryptor/internal/common/errors"
	"github.com/pcbtools/go-pcb-decryptor/internal/logger"
	"github.com/pcbtools/go-pcb-decryptor/internal/pcb"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

// writeTestContainer builds a container with one plain and one encrypted
// block (label "ABC") and writes it to dir/name. It returns the container
// and the encrypted block's plaintext.
func writeTestContainer(t *testing.T, codec *pcb.Codec, dir, name string) ([]byte, []byte) {
	t.Helper()

	// Labeled payload: u32 skip at offset 22, 31 fixed bytes, u32 length,
	// label. "ABC" lands the total at 64 bytes, a DES block multiple.
	plaintext := make([]byte, 22)
	plaintext = binary.LittleEndian.AppendUint32(plaintext, 0)
	plaintext = append(plaintext, make([]byte, 31)...)
	plaintext = binary.LittleEndian.AppendUint32(plaintext, 3)
	plaintext = append(plaintext, "ABC"...)

	ciphertext, err := codec.EncryptBlock(plaintext)
	if err != nil {
		t.Fatalf("EncryptBlock failed: %v", err)
	}

	container := make([]byte, 0x44)
	var dirEntries []byte
	for _, e := range []struct {
		typ     byte
		payload []byte
	}{
		{0x01, []byte("plain block")},
		{pcb.BlockTypeEncrypted, ciphertext},
	} {
		dirEntries = append(dirEntries, e.typ)
		dirEntries = binary.LittleEndian.AppendUint32(dirEntries, uint32(len(e.payload)))
		dirEntries = append(dirEntries, e.payload...)
	}
	binary.LittleEndian.PutUint32(container[0x40:], uint32(len(dirEntries)))
	container = append(container, dirEntries...)

	if err := os.WriteFile(filepath.Join(dir, name), container, 0644); err != nil {
		t.Fatalf("writing test container failed: %v", err)
	}
	return container, plaintext
}

func TestExtractBlocksWritesLabeledFiles(t *testing.T) {
	codec := pcb.NewCodec()
	dir := t.TempDir()
	_, plaintext := writeTestContainer(t, codec, dir, "board.pcb")

	if err := ExtractBlocks(codec, filepath.Join(dir, "board.pcb"), Options{}); err != nil {
		t.Fatalf("ExtractBlocks failed: %v", err)
	}

	outPath := filepath.Join(dir, "board_decrypted_blocks", "ABC_board_block_0.decrypted.dat")
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("expected output file missing: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Error("extracted file does not hold the decrypted payload")
	}
}

func TestDecryptFileWritesDecryptedContainer(t *testing.T) {
	codec := pcb.NewCodec()
	dir := t.TempDir()
	container, plaintext := writeTestContainer(t, codec, dir, "board.pcb")

	if err := DecryptFile(codec, filepath.Join(dir, "board.pcb"), Options{}); err != nil {
		t.Fatalf("DecryptFile failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "board.decrypted.pcb"))
	if err != nil {
		t.Fatalf("expected output file missing: %v", err)
	}
	if len(got) != len(container) {
		t.Fatalf("got %d output bytes, want %d", len(got), len(container))
	}
	if !bytes.Contains(got, plaintext) {
		t.Error("output does not contain the decrypted block payload")
	}
}

func TestDecryptFileRefusesToClobber(t *testing.T) {
	codec := pcb.NewCodec()
	dir := t.TempDir()
	writeTestContainer(t, codec, dir, "board.pcb")

	input := filepath.Join(dir, "board.pcb")
	if err := DecryptFile(codec, input, Options{}); err != nil {
		t.Fatalf("first DecryptFile failed: %v", err)
	}
	if err := DecryptFile(codec, input, Options{}); !errors.Is(err, commonerrors.ErrFileWriteError) {
		t.Fatalf("got %v, want ErrFileWriteError", err)
	}
	if err := DecryptFile(codec, input, Options{Overwrite: true}); err != nil {
		t.Fatalf("DecryptFile with Overwrite failed: %v", err)
	}
}

func TestLoadDecompressesGzipInput(t *testing.T) {
	codec := pcb.NewCodec()
	dir := t.TempDir()
	container, _ := writeTestContainer(t, codec, dir, "board.pcb")

	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	if _, err := gzipWriter.Write(container); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := gzipWriter.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}
	gzPath := filepath.Join(dir, "board.pcb.gz")
	if err := os.WriteFile(gzPath, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing gzip input failed: %v", err)
	}

	data, err := Load(gzPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(data, container) {
		t.Error("loaded data does not match original container")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.pcb"))
	if !errors.Is(err, commonerrors.ErrFileNotFound) {
		t.Fatalf("got %v, want ErrFileNotFound", err)
	}
}

func TestInspectListsDirectory(t *testing.T) {
	codec := pcb.NewCodec()
	dir := t.TempDir()
	writeTestContainer(t, codec, dir, "board.pcb")

	blocks, err := Inspect(codec, filepath.Join(dir, "board.pcb"))
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Encrypted() || !blocks[1].Encrypted() {
		t.Error("encrypted flags are wrong")
	}
}

func TestInspectMalformedContainer(t *testing.T) {
	dir := t.TempDir()
	data := make([]byte, 0x48)
	binary.LittleEndian.PutUint32(data[0x40:], 4096)
	path := filepath.Join(dir, "broken.pcb")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing test file failed: %v", err)
	}

	_, err := Inspect(pcb.NewCodec(), path)
	if !errors.Is(err, commonerrors.ErrMalformedContainer) {
		t.Fatalf("got %v, want ErrMalformedContainer", err)
	}
}
