package gmp

import (
	"fmt"

	"github.com/gmprotate/gmprotate/geom"
)

// Rewrite scans data as a GMP map, transforms its UMAP voxel grid (and,
// if present, its ZONE and LGHT tables) under symmetry s, and returns a
// new file image. Header bytes and every other chunk's bytes are copied
// verbatim (spec.md §3's lifecycle: "only the voxel, lights, and zones
// regions are overwritten in place").
func Rewrite(data []byte, s geom.Symmetry) ([]byte, error) {
	c, err := Scan(data)
	if err != nil {
		return nil, fmt.Errorf("gmp: scanning map: %w", err)
	}

	umap, ok := c.Find("UMAP")
	if !ok {
		return nil, ErrUncompressedOnly
	}

	out := append([]byte(nil), data...)

	grid, err := ReadVoxels(c.Payload(umap))
	if err != nil {
		return nil, fmt.Errorf("gmp: reading UMAP: %w", err)
	}
	transformed := grid.Transform(s)
	encoded := transformed.Encode()
	copy(out[umap.Offset:umap.Offset+umap.Size], encoded)

	if zone, ok := c.Find("ZONE"); ok {
		if err := rewriteZoneChunk(out, c, zone, s); err != nil {
			return nil, err
		}
	}

	if lght, ok := c.Find("LGHT"); ok {
		if err := rewriteLightChunk(out, c, lght, s); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func rewriteZoneChunk(out []byte, c *Container, zone Chunk, s geom.Symmetry) error {
	zones, err := DecodeZones(c.Payload(zone))
	if err != nil {
		return fmt.Errorf("gmp: reading ZONE: %w", err)
	}
	for i, z := range zones {
		tz, err := TransformZone(z, s)
		if err != nil {
			return fmt.Errorf("gmp: transforming zone %d: %w", i, err)
		}
		zones[i] = tz
	}
	encoded := EncodeZones(zones)
	if len(encoded) != zone.Size {
		return fmt.Errorf("gmp: transformed ZONE payload size %d != original %d", len(encoded), zone.Size)
	}
	copy(out[zone.Offset:zone.Offset+zone.Size], encoded)
	return nil
}

func rewriteLightChunk(out []byte, c *Container, lght Chunk, s geom.Symmetry) error {
	lights, err := DecodeLights(c.Payload(lght))
	if err != nil {
		return fmt.Errorf("gmp: reading LGHT: %w", err)
	}
	for i, l := range lights {
		tl, err := TransformLight(l, s)
		if err != nil {
			return fmt.Errorf("gmp: transforming light %d: %w", i, err)
		}
		lights[i] = tl
	}
	encoded := EncodeLights(lights)
	copy(out[lght.Offset:lght.Offset+lght.Size], encoded)
	return nil
}
