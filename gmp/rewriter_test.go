package gmp

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gmprotate/gmprotate/block"
	"github.com/gmprotate/gmprotate/geom"
)

func fullUMAPPayload() []byte {
	var cells []byte
	for i := 0; i < blockCount; i++ {
		var b block.Block
		if i == 100 {
			b = block.Block{Top: 7, Type: block.Pavement}
		}
		raw := b.Encode()
		cells = append(cells, raw[:]...)
	}
	return cells
}

func TestRewriteRequiresUMAP(t *testing.T) {
	data := buildFile(1, buildChunk("ZONE", nil))
	_, err := Rewrite(data, geom.FlipX)
	if !errors.Is(err, ErrUncompressedOnly) {
		t.Errorf("Rewrite without UMAP: err = %v, want ErrUncompressedOnly", err)
	}
}

func TestRewritePreservesUnknownChunk(t *testing.T) {
	umap := fullUMAPPayload()
	extra := []byte("untouched-bytes")
	data := buildFile(3, buildChunk("UMAP", umap), buildChunk("MOBJ", extra))

	out, err := Rewrite(data, geom.FlipX)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	c, err := Scan(out)
	if err != nil {
		t.Fatalf("Scan(out): %v", err)
	}
	m, ok := c.Find("MOBJ")
	if !ok {
		t.Fatal("MOBJ chunk missing from rewritten file")
	}
	if string(c.Payload(m)) != string(extra) {
		t.Errorf("MOBJ payload = %q, want %q (untouched)", c.Payload(m), extra)
	}
}

func TestRewriteHeaderPreserved(t *testing.T) {
	umap := fullUMAPPayload()
	data := buildFile(42, buildChunk("UMAP", umap))
	out, err := Rewrite(data, geom.Rot90)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	gotVersion := binary.LittleEndian.Uint16(out[len(magic) : len(magic)+2])
	if gotVersion != 42 {
		t.Errorf("rewritten version = %d, want 42", gotVersion)
	}
}

func TestRewriteTransformsUMAP(t *testing.T) {
	umap := fullUMAPPayload()
	data := buildFile(1, buildChunk("UMAP", umap))

	out, err := Rewrite(data, geom.FlipX)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	c, err := Scan(out)
	if err != nil {
		t.Fatalf("Scan(out): %v", err)
	}
	u, _ := c.Find("UMAP")
	grid, err := ReadVoxels(c.Payload(u))
	if err != nil {
		t.Fatalf("ReadVoxels: %v", err)
	}

	// block 100 in scanline order (z=0,y=0) sits at x=100; under flipX it
	// should have moved to x = MapWidth - 100.
	moved := grid.At(MapWidth-100, 0, 0)
	if moved.IsEmpty() {
		t.Error("expected the non-empty block to have moved under flipX")
	}
}
