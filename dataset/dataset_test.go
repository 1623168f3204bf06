package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcmslab/achrom/errs"
)

func testDataset() *Dataset {
	d := &Dataset{}
	d.Append("AGLKW", 11.2)
	d.Append("GGKWL", 14.9)
	d.Append("LLAKG", 19.3)
	d.Append("WAGLK", 16.0)

	return d
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		compression CompressionType
	}{
		{name: "None", compression: CompressionNone},
		{name: "Zstd", compression: CompressionZstd},
		{name: "S2", compression: CompressionS2},
		{name: "LZ4", compression: CompressionLZ4},
	}

	d := testDataset()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(d, WithCompression(tt.compression))
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(data), headerSize)
			require.Equal(t, byte(tt.compression), data[5])

			decoded, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, d.Peptides, decoded.Peptides)
			require.Equal(t, d.RTs, decoded.RTs)
		})
	}
}

func TestEncodeDefaultCompression(t *testing.T) {
	data, err := Encode(testDataset())
	require.NoError(t, err)
	require.Equal(t, byte(CompressionZstd), data[5])
}

func TestEncodeMisaligned(t *testing.T) {
	d := &Dataset{Peptides: []string{"A", "AA"}, RTs: []float64{1.0}}
	_, err := Encode(d)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestEncodeInvalidCompression(t *testing.T) {
	_, err := Encode(testDataset(), WithCompression(CompressionType(0xff)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestDecodeMalformed(t *testing.T) {
	data, err := Encode(testDataset())
	require.NoError(t, err)

	t.Run("truncated header", func(t *testing.T) {
		_, err := Decode(data[:headerSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[0] = 'X'
		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("unsupported version", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[4] = 99
		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	t.Run("unknown compression", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[5] = 0xff
		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("corrupted payload", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-1] ^= 0x01
		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("corrupted checksum", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[8] ^= 0x01
		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})
}

func TestSaveLoad(t *testing.T) {
	d := testDataset()
	path := filepath.Join(t.TempDir(), "sample.acds")

	require.NoError(t, Save(path, d, WithCompression(CompressionLZ4)))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, d.Peptides, loaded.Peptides)
	require.Equal(t, d.RTs, loaded.RTs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.acds"))
	require.Error(t, err)
}

func TestDatasetAppendLen(t *testing.T) {
	var d Dataset
	require.Equal(t, 0, d.Len())

	d.Append("AGK", 5.5)
	d.Append("GKL", 6.5)
	require.Equal(t, 2, d.Len())
	require.NoError(t, d.Validate())
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xff).String())
}
