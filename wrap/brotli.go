package wrap

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/pkg/errors"
)

// Brotli is the brotli stream format.
type Brotli struct{}

func (Brotli) Name() string { return "brotli" }

func (Brotli) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(src); err != nil {
		return nil, errors.Wrap(err, "wrap: brotli")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "wrap: brotli")
	}
	return buf.Bytes(), nil
}

func (Brotli) Decompress(src []byte) ([]byte, error) {
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(src)))
	if err != nil {
		return nil, errors.Wrap(err, "wrap: brotli")
	}
	return out, nil
}
