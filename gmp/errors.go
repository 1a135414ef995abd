package gmp

import "errors"

// ErrWrongFormat is returned by Scan when the source file's magic bytes
// don't read "GBMP" or aren't valid ASCII.
var ErrWrongFormat = errors.New("gmp: not a GBMP map file")

// ErrUncompressedOnly is returned by Rewrite when the map has no UMAP
// chunk; CMAP/DMAP compressed payloads are never decompressed.
var ErrUncompressedOnly = errors.New("gmp: map has no uncompressed UMAP chunk")

// ErrCoordinateOverflow is returned by the light pass when a transformed
// coordinate falls outside [0, LIGHT_MAX].
var ErrCoordinateOverflow = errors.New("gmp: light coordinate overflow")

// ErrZoneOutOfBounds is returned by the zone pass when a transformed box
// falls outside the byte-grid range [0, 255].
var ErrZoneOutOfBounds = errors.New("gmp: zone box out of bounds")
