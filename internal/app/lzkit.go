package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/gamearc/lzkit"
	"github.com/gamearc/lzkit/huff"
	"github.com/gamearc/lzkit/internal/config"
	"github.com/gamearc/lzkit/lzss"
	"github.com/gamearc/lzkit/prs"
	"github.com/gamearc/lzkit/rle"
	"github.com/gamearc/lzkit/wrap"
)

// Lzkit represents an active lzkit object
type Lzkit struct {
	ctx  context.Context
	meta config.Meta
	cli  config.Cli
}

// New creates a new lzkit instance
func New(meta config.Meta, cli config.Cli) *Lzkit {
	return &Lzkit{
		ctx:  context.Background(),
		meta: meta,
		cli:  cli,
	}
}

// Run executes the kong command selected on the command line.
func (c *Lzkit) Run(command string) error {
	switch strings.Fields(command)[0] {
	case "compress":
		return c.Compress()
	case "decompress":
		return c.Decompress()
	case "formats":
		return c.Formats()
	}
	return errors.Errorf("app: unknown command %q", command)
}

// Formats lists every format the tool can read and write.
func (c *Lzkit) Formats() error {
	for _, f := range formats {
		fmt.Printf("%-8s 0x%02X  %s\n", f.name, f.id, f.kind)
	}
	return nil
}

// searchOptions carry the effort flags into the legacy coders. The system
// codecs run at their own defaults and ignore them.
type searchOptions struct {
	level     lzkit.Level
	lookAhead bool
}

func parseLevel(s string) lzkit.Level {
	switch s {
	case "none":
		return lzkit.LevelNone
	case "fastest":
		return lzkit.LevelFastest
	case "smallest":
		return lzkit.LevelSmallestSize
	}
	return lzkit.LevelOptimal
}

// format binds one container id to its coder pair. The decompress side
// always receives the original length from the container header; the
// self-terminating and self-framing formats use it as an integrity check.
type format struct {
	id         byte
	name       string
	kind       string
	compress   func(src []byte, o searchOptions) ([]byte, error)
	decompress func(src []byte, outLen int) ([]byte, error)
}

var formats = buildFormats()

// Container ids are part of the on-disk format and never reassigned.
var systemIDs = map[string]byte{
	"deflate": 0x10,
	"zlib":    0x11,
	"zstd":    0x12,
	"brotli":  0x13,
	"snappy":  0x14,
	"lz4":     0x15,
	"xz":      0x16,
}

func buildFormats() []format {
	fs := []format{
		{
			id:   0x01,
			name: "lzss",
			kind: "legacy",
			compress: func(src []byte, o searchOptions) ([]byte, error) {
				return lzss.Compress(src, &lzss.Options{Level: o.level, LookAhead: o.lookAhead})
			},
			decompress: func(src []byte, outLen int) ([]byte, error) {
				return lzss.Decompress(src, outLen, nil)
			},
		},
		{
			id:   0x02,
			name: "prs",
			kind: "legacy",
			compress: func(src []byte, o searchOptions) ([]byte, error) {
				return prs.Compress(src, &prs.Options{Level: o.level, LookAhead: o.lookAhead})
			},
			decompress: func(src []byte, outLen int) ([]byte, error) {
				out, err := prs.Decompress(src)
				if err != nil {
					return nil, err
				}
				if len(out) != outLen {
					return nil, lzkit.SizeMismatch(outLen, len(out))
				}
				return out, nil
			},
		},
		{
			id:   0x03,
			name: "rle",
			kind: "legacy",
			compress: func(src []byte, o searchOptions) ([]byte, error) {
				return rle.Compress(src), nil
			},
			decompress: rle.Decompress,
		},
		{
			id:   0x04,
			name: "huff",
			kind: "legacy",
			compress: func(src []byte, o searchOptions) ([]byte, error) {
				return huff.Compress(src), nil
			},
			decompress: huff.Decompress,
		},
	}
	for _, codec := range wrap.Codecs() {
		id, ok := systemIDs[codec.Name()]
		if !ok {
			panic(fmt.Sprintf("app: no container id for codec %q", codec.Name()))
		}
		fs = append(fs, format{
			id:   id,
			name: codec.Name(),
			kind: "system",
			compress: func(src []byte, o searchOptions) ([]byte, error) {
				return codec.Compress(src)
			},
			decompress: func(src []byte, outLen int) ([]byte, error) {
				out, err := codec.Decompress(src)
				if err != nil {
					return nil, err
				}
				if len(out) != outLen {
					return nil, lzkit.SizeMismatch(outLen, len(out))
				}
				return out, nil
			},
		})
	}
	return fs
}

func formatByName(name string) (format, bool) {
	for _, f := range formats {
		if f.name == name {
			return f, true
		}
	}
	return format{}, false
}

func formatByID(id byte) (format, bool) {
	for _, f := range formats {
		if f.id == id {
			return f, true
		}
	}
	return format{}, false
}
