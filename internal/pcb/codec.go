package pcb

// Codec holds the fixed constants a container decode runs under. Production
// callers use NewCodec; tests may substitute their own key and marker.
type Codec struct {
	// Key is the 8-byte DES key applied to every encrypted block.
	Key []byte

	// Marker bounds the XOR pass: bytes at and after its first occurrence
	// are left untouched by Deobfuscate.
	Marker []byte
}

// NewCodec returns a Codec configured with the format's master key and
// diode readings marker.
func NewCodec() *Codec {
	return &Codec{
		Key:    MasterKey,
		Marker: DiodeReadingsMarker,
	}
}
