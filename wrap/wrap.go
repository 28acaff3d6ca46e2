// Package wrap puts one uniform surface over the general-purpose codecs
// that show up next to the legacy schemes in newer container revisions.
// Every codec here is self-framing: its stream carries whatever state
// decompression needs, so unlike the legacy coders no declared output
// length is involved.
package wrap

// A Codec is one whole-buffer compression scheme under a stable name.
type Codec interface {
	Name() string
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte) ([]byte, error)
}

// Codecs returns one instance of every wrapper, in a stable order.
func Codecs() []Codec {
	return []Codec{Deflate{}, Zlib{}, Zstd{}, Brotli{}, Snappy{}, LZ4{}, XZ{}}
}

// Lookup finds a codec by name.
func Lookup(name string) (Codec, bool) {
	for _, c := range Codecs() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
