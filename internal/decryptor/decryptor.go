// Package decryptor wires file I/O around the pcb codec: it loads a
// container (unwrapping stream compression when present), runs one of the
// decode operations, and writes the results. A fatal error in any stage
// aborts the file before its output is written.
package decryptor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	compression "github.com/pcbtools/go-pcb-decryptor/internal/common/compressionutil"
	commonerrors "github.com/pcbtools/go-pcb-decryptor/internal/common/errors"
	"github.com/pcbtools/go-pcb-decryptor/internal/common/fsutil"
	"github.com/pcbtools/go-pcb-decryptor/internal/logger"
	"github.com/pcbtools/go-pcb-decryptor/internal/pcb"
)

// Options controls where decoded output lands.
type Options struct {
	// OutputDir overrides the default extract-mode directory
	// (<name>_decrypted_blocks next to the input).
	OutputDir string

	// OutputPath overrides the default whole-file output (<name>.decrypted.pcb).
	OutputPath string

	// Overwrite allows replacing existing output files.
	Overwrite bool
}

// Load reads a container file into memory, transparently decompressing
// gzip/xz/bzip2 wrapped inputs.
func Load(inputPath string) ([]byte, error) {
	if !fsutil.FileExists(inputPath) {
		return nil, fmt.Errorf("%w: %s", commonerrors.ErrFileNotFound, inputPath)
	}
	data, err := fsutil.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", commonerrors.ErrFileReadError, inputPath, err)
	}

	data, format, err := compression.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", commonerrors.ErrDecompressionFailed, inputPath, err)
	}
	if format != compression.FormatNone {
		logger.LogDebug("Decompressed input container", map[string]interface{}{
			"file":   inputPath,
			"format": string(format),
		})
	}
	return data, nil
}

// ExtractBlocks runs extract mode: every encrypted block is decrypted and
// written as its own file, named from the label parsed out of its payload.
func ExtractBlocks(codec *pcb.Codec, inputPath string, opts Options) error {
	data, err := Load(inputPath)
	if err != nil {
		return err
	}

	blocks, err := codec.ExtractBlocks(data)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	logger.LogInfo("Extracted encrypted blocks", map[string]interface{}{
		"file":   inputPath,
		"blocks": len(blocks),
	})

	name := baseName(inputPath)
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(filepath.Dir(inputPath), name+"_decrypted_blocks")
	}
	if err := fsutil.CreateDirIfNotExists(outputDir); err != nil {
		return fmt.Errorf("%w: %s: %v", commonerrors.ErrDirCreateError, outputDir, err)
	}

	for _, block := range blocks {
		outPath := filepath.Join(outputDir,
			fmt.Sprintf("%s_%s_block_%d.decrypted.dat", block.Label, name, block.Index))
		if err := writeOutput(outPath, block.Data, opts.Overwrite); err != nil {
			return err
		}
		logger.LogInfo("Wrote decrypted block", map[string]interface{}{
			"label": block.Label,
			"index": block.Index,
			"path":  outPath,
			"bytes": len(block.Data),
		})
	}
	return nil
}

// DecryptFile runs whole-file mode: the container is rebuilt with every
// encrypted block payload replaced by its plaintext and written out as one
// file.
func DecryptFile(codec *pcb.Codec, inputPath string, opts Options) error {
	data, err := Load(inputPath)
	if err != nil {
		return err
	}

	decrypted, shrunk, err := codec.DecryptContainer(data)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	for _, index := range shrunk {
		// Depadded payloads are expected to match their ciphertext length
		// minus the pad; a differing length shifts every later offset in
		// the output.
		logger.LogWarn("Decrypted block length differs from ciphertext", map[string]interface{}{
			"file":  inputPath,
			"block": index,
		})
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, ".pcb") + ".decrypted.pcb"
	}
	if err := writeOutput(outPath, decrypted, opts.Overwrite); err != nil {
		return err
	}
	logger.LogInfo("Wrote decrypted container", map[string]interface{}{
		"file":  inputPath,
		"path":  outPath,
		"bytes": len(decrypted),
	})
	return nil
}

// Inspect deobfuscates and walks the container without decrypting anything,
// returning the block directory in file order.
func Inspect(codec *pcb.Codec, inputPath string) ([]pcb.Block, error) {
	data, err := Load(inputPath)
	if err != nil {
		return nil, err
	}
	plain, err := codec.Deobfuscate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}
	blocks, err := pcb.Walk(plain)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}
	return blocks, nil
}

// baseName strips the directory and the conventional .pcb extension from an
// input path. Other extensions are kept; the format does not require one.
func baseName(inputPath string) string {
	return strings.TrimSuffix(filepath.Base(inputPath), ".pcb")
}

func writeOutput(path string, data []byte, overwrite bool) error {
	var err error
	if overwrite {
		err = fsutil.WriteFile(path, data, os.FileMode(0644))
	} else {
		err = fsutil.WriteFileNoClobber(path, data, os.FileMode(0644))
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", commonerrors.ErrFileWriteError, path, err)
	}
	return nil
}
