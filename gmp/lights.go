package gmp

import (
	"encoding/binary"
	"fmt"

	"github.com/gmprotate/gmprotate/geom"
)

// LightSize is the encoded length of one lights-table entry.
const LightSize = 16

// LightMax is the fixed-point coordinate ceiling for light entries
// (spec.md §3: "LIGHT_MAX = 32767"), substituted for MAP_MAX-1 in the
// coordinate transform.
const LightMax = 32767

// Light is one decoded entry of the LGHT chunk.
type Light struct {
	ARGB      uint32
	X, Y, Z   uint16
	Radius    uint16
	Intensity uint8
	Shape     uint8
	OnTime    uint8
	OffTime   uint8
}

// DecodeLights parses a LGHT payload into individual entries.
func DecodeLights(payload []byte) ([]Light, error) {
	if len(payload)%LightSize != 0 {
		return nil, fmt.Errorf("gmp: LGHT payload length %d not a multiple of %d", len(payload), LightSize)
	}
	lights := make([]Light, 0, len(payload)/LightSize)
	for off := 0; off < len(payload); off += LightSize {
		e := payload[off : off+LightSize]
		lights = append(lights, Light{
			ARGB:      binary.LittleEndian.Uint32(e[0:4]),
			X:         binary.LittleEndian.Uint16(e[4:6]),
			Y:         binary.LittleEndian.Uint16(e[6:8]),
			Z:         binary.LittleEndian.Uint16(e[8:10]),
			Radius:    binary.LittleEndian.Uint16(e[10:12]),
			Intensity: e[12],
			Shape:     e[13],
			OnTime:    e[14],
			OffTime:   e[15],
		})
	}
	return lights, nil
}

// Encode re-emits l as a 16-byte entry.
func (l Light) Encode() [LightSize]byte {
	var out [LightSize]byte
	binary.LittleEndian.PutUint32(out[0:4], l.ARGB)
	binary.LittleEndian.PutUint16(out[4:6], l.X)
	binary.LittleEndian.PutUint16(out[6:8], l.Y)
	binary.LittleEndian.PutUint16(out[8:10], l.Z)
	binary.LittleEndian.PutUint16(out[10:12], l.Radius)
	out[12] = l.Intensity
	out[13] = l.Shape
	out[14] = l.OnTime
	out[15] = l.OffTime
	return out
}

// TransformLight transforms a light's (x, y) in the fixed-point space,
// leaving z, radius and every other field untouched (spec.md §4.D's
// light pass). It fails with ErrCoordinateOverflow if the transformed
// coordinate falls outside [0, LightMax].
func TransformLight(l Light, s geom.Symmetry) (Light, error) {
	fx, fy := geom.TransformCoordFloatMax(float64(l.X), float64(l.Y), s, LightMax)
	if fx < 0 || fx > LightMax || fy < 0 || fy > LightMax {
		return Light{}, fmt.Errorf("gmp: light (%g, %g) out of [0, %d]: %w", fx, fy, LightMax, ErrCoordinateOverflow)
	}
	l.X = uint16(fx)
	l.Y = uint16(fy)
	return l, nil
}

// EncodeLights re-emits a slice of entries back into one payload.
func EncodeLights(lights []Light) []byte {
	out := make([]byte, 0, len(lights)*LightSize)
	for _, l := range lights {
		raw := l.Encode()
		out = append(out, raw[:]...)
	}
	return out
}
