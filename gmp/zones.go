package gmp

import (
	"fmt"

	"github.com/gmprotate/gmprotate/geom"
)

// Zone is one decoded entry of the ZONE payload. Name is copied
// unchanged by every transform.
type Zone struct {
	Type uint8
	X, Y uint8
	W, H uint8
	Name []byte
}

// DecodeZones parses a ZONE payload into individual variable-length
// entries (spec.md §3: "type:u8, x:u8, y:u8, w:u8, h:u8, name_len:u8,
// name:bytes[name_len]").
func DecodeZones(payload []byte) ([]Zone, error) {
	var zones []Zone
	off := 0
	for off < len(payload) {
		if off+6 > len(payload) {
			return nil, fmt.Errorf("gmp: truncated zone entry at offset %d", off)
		}
		z := Zone{
			Type: payload[off],
			X:    payload[off+1],
			Y:    payload[off+2],
			W:    payload[off+3],
			H:    payload[off+4],
		}
		nameLen := int(payload[off+5])
		nameStart := off + 6
		if nameStart+nameLen > len(payload) {
			return nil, fmt.Errorf("gmp: zone name (len %d at %d) exceeds payload", nameLen, nameStart)
		}
		z.Name = append([]byte(nil), payload[nameStart:nameStart+nameLen]...)
		zones = append(zones, z)
		off = nameStart + nameLen
	}
	return zones, nil
}

// Encode re-emits z as a variable-length entry.
func (z Zone) Encode() []byte {
	out := make([]byte, 6+len(z.Name))
	out[0] = z.Type
	out[1] = z.X
	out[2] = z.Y
	out[3] = z.W
	out[4] = z.H
	out[5] = uint8(len(z.Name))
	copy(out[6:], z.Name)
	return out
}

// EncodeZones re-emits a slice of entries back into one payload.
func EncodeZones(zones []Zone) []byte {
	var out []byte
	for _, z := range zones {
		out = append(out, z.Encode()...)
	}
	return out
}

// TransformZone transforms z's (x, y, w, h) as an axis-aligned box using
// the byte-grid offset rule of spec.md §4.D's zone pass, e.g. under
// flipX: x' = MAP_WIDTH - x - w + 1; under rot90: (x', y', w', h') =
// (MAP_HEIGHT - y - h + 1, x, h, w). Name bytes pass through unchanged.
// Bounds violations are fatal (ErrZoneOutOfBounds).
func TransformZone(z Zone, s geom.Symmetry) (Zone, error) {
	x, y, w, h := int(z.X), int(z.Y), int(z.W), int(z.H)
	var nx, ny, nw, nh int

	switch s {
	case geom.Identity:
		nx, ny, nw, nh = x, y, w, h
	case geom.FlipX:
		nx, ny, nw, nh = MapWidth-x-w+1, y, w, h
	case geom.FlipY:
		nx, ny, nw, nh = x, MapHeight-y-h+1, w, h
	case geom.FlipXY, geom.Rot180:
		nx, ny, nw, nh = MapWidth-x-w+1, MapHeight-y-h+1, w, h
	case geom.Rot90:
		nx, ny, nw, nh = MapHeight-y-h+1, x, h, w
	case geom.Rot270:
		nx, ny, nw, nh = y, MapWidth-x-w+1, h, w
	default:
		nx, ny, nw, nh = x, y, w, h
	}

	if nx < 0 || nx > 255 || ny < 0 || ny > 255 || nw < 0 || nw > 255 || nh < 0 || nh > 255 {
		return Zone{}, fmt.Errorf("gmp: zone box (%d,%d,%d,%d) out of bounds: %w", nx, ny, nw, nh, ErrZoneOutOfBounds)
	}

	z.X, z.Y, z.W, z.H = uint8(nx), uint8(ny), uint8(nw), uint8(nh)
	return z, nil
}
