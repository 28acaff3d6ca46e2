package wrap

import (
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Zstd is the zstandard frame format.
type Zstd struct{}

func (Zstd) Name() string { return "zstd" }

func (Zstd) Compress(src []byte) ([]byte, error) {
	w, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, errors.Wrap(err, "wrap: zstd")
	}
	defer w.Close()
	return w.EncodeAll(src, nil), nil
}

func (Zstd) Decompress(src []byte) ([]byte, error) {
	r, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, "wrap: zstd")
	}
	defer r.Close()
	out, err := r.DecodeAll(src, nil)
	if err != nil {
		return nil, errors.Wrap(err, "wrap: zstd")
	}
	return out, nil
}
