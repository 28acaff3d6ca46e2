package app

import (
	"math"
	"os"
	"path/filepath"

	"github.com/pierrec/xxHash/xxHash32"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Compress runs the compress command: every input file becomes its own lzk
// container, files processed in parallel.
func (c *Lzkit) Compress() error {
	f, ok := formatByName(c.cli.Compress.Format)
	if !ok {
		return errors.Errorf("app: unknown format %q", c.cli.Compress.Format)
	}
	opts := searchOptions{
		level:     parseLevel(c.cli.Compress.Level),
		lookAhead: !c.cli.Compress.NoLazy,
	}

	files := c.cli.Compress.Files
	if err := ensureBatchDir(c.cli.Compress.Output, len(files)); err != nil {
		return err
	}

	eg, _ := errgroup.WithContext(c.ctx)
	for _, file := range files {
		eg.Go(func() error {
			logger := log.With().Str("file", file).Str("format", f.name).Logger()

			src, err := os.ReadFile(file)
			if err != nil {
				return errors.Wrapf(err, "read %q", file)
			}
			if int64(len(src)) > math.MaxUint32 {
				return errors.Errorf("%q is larger than the container length field", file)
			}

			packed, err := f.compress(src, opts)
			if err != nil {
				return errors.Wrapf(err, "compress %q", file)
			}

			out := writeHeader(make([]byte, 0, headerSize+len(packed)), header{
				formatID: f.id,
				origLen:  len(src),
				sum:      xxHash32.Checksum(src, 0),
			})
			out = append(out, packed...)

			dest := batchPath(c.cli.Compress.Output, file+lzkExt, len(files) > 1)
			if err := os.WriteFile(dest, out, 0o644); err != nil {
				return errors.Wrapf(err, "write %q", dest)
			}

			logger.Info().
				Int("in", len(src)).
				Int("out", len(out)).
				Str("dest", dest).
				Msg("compressed")
			return nil
		})
	}
	return eg.Wait()
}

const lzkExt = ".lzk"

// ensureBatchDir creates the output directory for multi-file runs. With a
// single input the output flag names the file itself.
func ensureBatchDir(output string, files int) error {
	if output == "" || files < 2 {
		return nil
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %q", output)
	}
	return nil
}

// batchPath resolves where one result lands: next to its input by default,
// at the named path for a single file, inside the directory for a batch.
func batchPath(output, derived string, batch bool) string {
	if output == "" {
		return derived
	}
	if batch {
		return filepath.Join(output, filepath.Base(derived))
	}
	return output
}
