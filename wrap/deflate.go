package wrap

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// Deflate is the raw DEFLATE stream, without the zlib or gzip wrapper.
type Deflate struct{}

func (Deflate) Name() string { return "deflate" }

func (Deflate) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, errors.Wrap(err, "wrap: deflate")
	}
	if _, err := w.Write(src); err != nil {
		return nil, errors.Wrap(err, "wrap: deflate")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "wrap: deflate")
	}
	return buf.Bytes(), nil
}

func (Deflate) Decompress(src []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(src))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "wrap: deflate")
	}
	return out, nil
}

// Zlib is DEFLATE under the zlib header and Adler-32 trailer.
type Zlib struct{}

func (Zlib) Name() string { return "zlib" }

func (Zlib) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, errors.Wrap(err, "wrap: zlib")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "wrap: zlib")
	}
	return buf.Bytes(), nil
}

func (Zlib) Decompress(src []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "wrap: zlib")
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "wrap: zlib")
	}
	return out, nil
}
