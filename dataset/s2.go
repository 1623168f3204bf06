package dataset

import "github.com/klauspost/compress/s2"

// s2Codec compresses payloads with S2, trading some ratio for speed.
type s2Codec struct{}

var _ Codec = s2Codec{}

func (s2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (s2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
