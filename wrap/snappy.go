package wrap

import (
	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// Snappy is the snappy block format. The block header carries the decoded
// length, so the raw block is already self-framing.
type Snappy struct{}

func (Snappy) Name() string { return "snappy" }

func (Snappy) Compress(src []byte) ([]byte, error) {
	return snappy.Encode(nil, src), nil
}

func (Snappy) Decompress(src []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, src)
	if err != nil {
		return nil, errors.Wrap(err, "wrap: snappy")
	}
	return out, nil
}
