package wrap

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// LZ4 is the lz4 frame format. The raw block format has no length field of
// its own, so only the frame fits the self-framing contract here.
type LZ4 struct{}

func (LZ4) Name() string { return "lz4" }

func (LZ4) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, errors.Wrap(err, "wrap: lz4")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "wrap: lz4")
	}
	return buf.Bytes(), nil
}

func (LZ4) Decompress(src []byte) ([]byte, error) {
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
	if err != nil {
		return nil, errors.Wrap(err, "wrap: lz4")
	}
	return out, nil
}
