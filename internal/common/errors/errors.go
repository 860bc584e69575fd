package errors

import (
	"errors"
)

var (
	// General Errors
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrPathNotAccessible = errors.New("path is not accessible")

	// Container Errors
	ErrMalformedContainer = errors.New("malformed container")
	ErrContainerTooSmall  = errors.New("container smaller than fixed header")
	ErrLabelParse         = errors.New("label parse failed")
	ErrBadCiphertext      = errors.New("ciphertext length is not a multiple of the cipher block size")
	ErrBadKeySize         = errors.New("cipher key has wrong size")

	// File & Directory Errors
	ErrFileNotFound    = errors.New("file not found")
	ErrFileReadError   = errors.New("error reading file")
	ErrFileWriteError  = errors.New("error writing to file")
	ErrFileExistsError = errors.New("file already exists")
	ErrDirCreateError  = errors.New("error creating directory")

	// Compression Errors
	ErrDecompressionFailed    = errors.New("decompression failed")
	ErrUnsupportedCompression = errors.New("unsupported compression format")
)
