package dataset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	codecs := []struct {
		name        string
		compression CompressionType
	}{
		{name: "None", compression: CompressionNone},
		{name: "Zstd", compression: CompressionZstd},
		{name: "S2", compression: CompressionS2},
		{name: "LZ4", compression: CompressionLZ4},
	}

	// Repetitive payload resembling a JSON-encoded sample set, large enough
	// to force real compression work.
	payload := bytes.Repeat([]byte(`{"peptides":["AGLKWAGLKW"],"rts":[11.25]}`), 512)

	for _, tt := range codecs {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := codecFor(tt.compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)

			if tt.compression != CompressionNone {
				require.Less(t, len(compressed), len(payload))
			}
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, compression := range []CompressionType{
		CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4,
	} {
		codec, err := codecFor(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}
