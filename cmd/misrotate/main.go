// Command misrotate applies an axis flip or a 90°-multiple rotation to
// one or more MIS script files, writing each result into a sibling
// directory and mirroring any same-named mission-subscripts directory
// beside the source (spec.md §3, §6).
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gmprotate/gmprotate/geom"
	"github.com/gmprotate/gmprotate/iohelper"
	"github.com/gmprotate/gmprotate/script"
)

var (
	flipX       = flag.Bool("flip_x", false, "Flip the script across the x axis.")
	flipXs      = flag.Bool("x", false, "Shorthand for -flip_x.")
	flipY       = flag.Bool("flip_y", false, "Flip the script across the y axis.")
	flipYs      = flag.Bool("y", false, "Shorthand for -flip_y.")
	rotate      = flag.Int("rotate", -1, "Rotate the script clockwise by this many degrees (90, 180, or 270).")
	outDir      = flag.String("out_dir", "", "Write output files under this directory instead of beside the source file.")
	listOpcodes = flag.Bool("list-opcodes", false, "Print every registered opcode keyword and exit.")
)

func main() {
	flag.Parse()

	if *listOpcodes {
		for _, kw := range script.Keywords() {
			fmt.Println(kw)
		}
		return
	}

	s, err := symmetryFromFlags()
	if err != nil {
		log.Fatalf("misrotate: %v", err)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		log.Fatal("misrotate: at least one mis_path is required")
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
		log.Fatalf("misrotate: %v", err)
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
		return 0, fmt.Errorf("flipXY is unsupported for scripts; use -rotate 180 instead")
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
	lines, err := script.TransformFile(path, s)
	if err != nil {
		return fmt.Errorf("transforming %q: %w", path, err)
	}

	destDir := outputDir(path, *outDir, s)
	destFile := filepath.Join(destDir, filepath.Base(path))

	var sb strings.Builder
	if err := script.WriteLines(&sb, lines); err != nil {
		return fmt.Errorf("formatting %q: %w", path, err)
	}
	if err := iohelper.AtomicWriteNew(destFile, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", destFile, err)
	}

	srcSubdir := strings.TrimSuffix(path, filepath.Ext(path))
	if info, err := os.Stat(srcSubdir); err == nil && info.IsDir() {
		if err := mirrorSubscripts(srcSubdir, destDir, s); err != nil {
			return fmt.Errorf("mirroring subscripts for %q: %w", path, err)
		}
	}
	return nil
}

// mirrorSubscripts transforms every .mis fragment inside srcDir the same
// way and writes it under destParent/<base(srcDir)>/.
func mirrorSubscripts(srcDir, destParent string, s geom.Symmetry) error {
	destDir := filepath.Join(destParent, filepath.Base(srcDir))
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".mis") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		lines, err := script.TransformFile(path, s)
		if err != nil {
			return fmt.Errorf("transforming %q: %w", path, err)
		}
		var sb strings.Builder
		if err := script.WriteLines(&sb, lines); err != nil {
			return err
		}
		return iohelper.AtomicWriteNew(filepath.Join(destDir, rel), []byte(sb.String()), 0o644)
	})
}

// outputDir derives the sibling output directory for a transformed
// script per spec.md §6: "<name>_flip_{x,y}" or "_rotated_{angle}".
func outputDir(src, dir string, s geom.Symmetry) string {
	ext := filepath.Ext(src)
	base := strings.TrimSuffix(filepath.Base(src), ext)

	var suffix string
	switch s {
	case geom.FlipX:
		suffix = "_flip_x"
	case geom.FlipY:
		suffix = "_flip_y"
	case geom.Rot90:
		suffix = "_rotated_90"
	case geom.Rot180:
		suffix = "_rotated_180"
	case geom.Rot270:
		suffix = "_rotated_270"
	}

	name := base + suffix
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, name)
}
