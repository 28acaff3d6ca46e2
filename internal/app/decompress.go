package app

import (
	"os"
	"strings"

	"github.com/pierrec/xxHash/xxHash32"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Decompress runs the decompress command, restoring the original bytes of
// each container in parallel.
func (c *Lzkit) Decompress() error {
	files := c.cli.Decompress.Files
	if err := ensureBatchDir(c.cli.Decompress.Output, len(files)); err != nil {
		return err
	}

	eg, _ := errgroup.WithContext(c.ctx)
	for _, file := range files {
		eg.Go(func() error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return errors.Wrapf(err, "read %q", file)
			}
			h, payload, err := parseHeader(raw)
			if err != nil {
				return errors.Wrapf(err, "parse %q", file)
			}
			f, ok := formatByID(h.formatID)
			if !ok {
				return errors.Errorf("app: format id 0x%02X in %q not supported", h.formatID, file)
			}

			logger := log.With().Str("file", file).Str("format", f.name).Logger()

			out, err := f.decompress(payload, h.origLen)
			if err != nil {
				return errors.Wrapf(err, "decompress %q", file)
			}
			if sum := xxHash32.Checksum(out, 0); sum != h.sum {
				return errors.Wrapf(ErrChecksum, "decompress %q: got %08x, header says %08x", file, sum, h.sum)
			}

			dest := batchPath(c.cli.Decompress.Output, restoredName(file), len(files) > 1)
			if err := os.WriteFile(dest, out, 0o644); err != nil {
				return errors.Wrapf(err, "write %q", dest)
			}

			logger.Info().
				Int("in", len(raw)).
				Int("out", len(out)).
				Str("dest", dest).
				Msg("decompressed")
			return nil
		})
	}
	return eg.Wait()
}

// restoredName strips the container extension, or marks the output when the
// input was named without it.
func restoredName(file string) string {
	if trimmed := strings.TrimSuffix(file, lzkExt); trimmed != file {
		return trimmed
	}
	return file + ".out"
}
