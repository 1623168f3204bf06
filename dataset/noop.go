package dataset

// noopCodec passes payloads through unchanged. Useful for debugging envelope
// contents and for baseline size measurements.
type noopCodec struct{}

var _ Codec = noopCodec{}

func (noopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (noopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
