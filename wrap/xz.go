package wrap

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// XZ is the xz container around LZMA2.
type XZ struct{}

func (XZ) Name() string { return "xz" }

func (XZ) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "wrap: xz")
	}
	if _, err := w.Write(src); err != nil {
		return nil, errors.Wrap(err, "wrap: xz")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "wrap: xz")
	}
	return buf.Bytes(), nil
}

func (XZ) Decompress(src []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "wrap: xz")
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "wrap: xz")
	}
	return out, nil
}
