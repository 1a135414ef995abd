// Command gmprotate applies an axis flip or a 90°-multiple rotation to
// one or more GMP map files, writing each result beside the source (or
// under -out_dir) under the naming convention of spec.md §6.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gmprotate/gmprotate/geom"
	"github.com/gmprotate/gmprotate/gmp"
	"github.com/gmprotate/gmprotate/iohelper"
)

var (
	flipX  = flag.Bool("flip_x", false, "Flip the map across the x axis.")
	flipXs = flag.Bool("x", false, "Shorthand for -flip_x.")
	flipY  = flag.Bool("flip_y", false, "Flip the map across the y axis.")
	flipYs = flag.Bool("y", false, "Shorthand for -flip_y.")
	rotate = flag.Int("rotate", -1, "Rotate the map clockwise by this many degrees (90, 180, or 270).")
	outDir = flag.String("out_dir", "", "Write output files to this directory instead of the source file's directory.")
)

func main() {
	flag.Parse()

	s, err := symmetryFromFlags()
	if err != nil {
		log.Fatalf("gmprotate: %v", err)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		log.Fatal("gmprotate: at least one gmp_path is required")
	}

	g, ctx := errgroup.WithContext(context.Background())
	for _, p := range paths {
		p := p
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return rewriteOne(p, s)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("gmprotate: %v", err)
	}
}

func symmetryFromFlags() (geom.Symmetry, error) {
	x := *flipX || *flipXs
	y := *flipY || *flipYs

	if (x || y) && *rotate >= 0 {
		return 0, fmt.Errorf("specify either a flip or -rotate, not both")
	}

	switch {
	case x && y:
		return geom.FlipXY, nil
	case x:
		return geom.FlipX, nil
	case y:
		return geom.FlipY, nil
	case *rotate >= 0:
		switch *rotate {
		case 90:
			return geom.Rot90, nil
		case 180:
			return geom.Rot180, nil
		case 270:
			return geom.Rot270, nil
		default:
			return 0, fmt.Errorf("-rotate must be 90, 180 or 270, got %d", *rotate)
		}
	default:
		return 0, fmt.Errorf("specify -flip_x/-x, -flip_y/-y, or -rotate")
	}
}

func rewriteOne(path string, s geom.Symmetry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	out, err := gmp.Rewrite(data, s)
	if err != nil {
		return fmt.Errorf("transforming %q: %w", path, err)
	}

	dest := outputPath(path, *outDir, s)
	if err := iohelper.AtomicWriteNew(dest, out, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", dest, err)
	}
	return nil
}

// outputPath derives the destination for a transformed map per spec.md
// §6: "<name>_flip_{x,y,xy}.gmp" or "<name>_rotated.gmp", in dir if
// non-empty, else beside src.
func outputPath(src, dir string, s geom.Symmetry) string {
	ext := filepath.Ext(src)
	base := strings.TrimSuffix(filepath.Base(src), ext)

	var suffix string
	switch s {
	case geom.FlipX:
		suffix = "_flip_x"
	case geom.FlipY:
		suffix = "_flip_y"
	case geom.FlipXY:
		suffix = "_flip_xy"
	default:
		suffix = "_rotated"
	}

	name := base + suffix + ext
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, name)
}
