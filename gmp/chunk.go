// Package gmp implements the GMP map container: the chunk scanner that
// identifies byte regions within a "GBMP" file (nesrom.New's
// header-then-sized-regions idiom, generalized from fixed PRG/CHR block
// sizes to tag-prefixed variable-length chunks), and the rewriter that
// applies the block package's transforms to every voxel plus the lights
// and zones tables.
package gmp

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/slices"
)

// magic is the 4-byte ASCII file identifier every GMP map starts with.
const magic = "GBMP"

// headerSize is the magic plus the u16 little-endian version field.
const headerSize = len(magic) + 2

// knownTags lists every chunk tag this scanner recognizes. Tags not in
// this list are still returned by Scan (their byte ranges are simply
// never touched by Rewrite), matching spec.md §4.C: "the others are
// preserved by not touching their byte ranges."
var knownTags = []string{
	"UMAP", "CMAP", "DMAP", "ZONE", "MOBJ", "PSXM", "ANIM", "LGHT", "EDIT", "THSR", "RGEN",
}

// IsKnownTag reports whether tag is one of the chunk kinds this scanner
// recognizes by name.
func IsKnownTag(tag string) bool {
	return slices.Contains(knownTags, tag)
}

// Chunk records a payload's byte range within the source file, keyed by
// its 4-byte tag.
type Chunk struct {
	Tag    string
	Offset int // start of the payload, i.e. just past tag+length
	Size   int
}

// Container is the result of scanning a GMP file: its header bytes plus
// every chunk record found, in file order.
type Container struct {
	Version uint16
	Header  []byte // the full headerSize-byte header, copied verbatim
	Chunks  []Chunk
	data    []byte // the full file contents Scan was given
}

// Scan reads a GMP file's header and iterates its chunk records until
// EOF (spec.md §4.C). It does not copy payload bytes out; callers index
// back into the Container's retained data via Payload.
func Scan(data []byte) (*Container, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("gmp: file too short for header (%d bytes): %w", len(data), ErrWrongFormat)
	}
	if string(data[:len(magic)]) != magic {
		return nil, fmt.Errorf("gmp: bad magic %q: %w", data[:len(magic)], ErrWrongFormat)
	}

	c := &Container{
		Version: binary.LittleEndian.Uint16(data[len(magic):headerSize]),
		Header:  append([]byte(nil), data[:headerSize]...),
		data:    data,
	}

	off := headerSize
	for off < len(data) {
		if off+8 > len(data) {
			return nil, fmt.Errorf("gmp: truncated chunk header at offset %d", off)
		}
		tag := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		payloadStart := off + 8
		if payloadStart+size > len(data) {
			return nil, fmt.Errorf("gmp: chunk %q payload (size %d at %d) exceeds file length %d", tag, size, payloadStart, len(data))
		}
		c.Chunks = append(c.Chunks, Chunk{Tag: tag, Offset: payloadStart, Size: size})
		off = payloadStart + size
	}

	return c, nil
}

// Find returns the first chunk with the given tag, if any.
func (c *Container) Find(tag string) (Chunk, bool) {
	for _, ch := range c.Chunks {
		if ch.Tag == tag {
			return ch, true
		}
	}
	return Chunk{}, false
}

// Payload returns the raw bytes backing chunk ch.
func (c *Container) Payload(ch Chunk) []byte {
	return c.data[ch.Offset : ch.Offset+ch.Size]
}
