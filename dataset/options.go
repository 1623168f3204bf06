package dataset

import "github.com/lcmslab/achrom/internal/options"

type config struct {
	compression CompressionType
}

func defaultConfig() config {
	return config{compression: CompressionZstd}
}

// Option is a functional option for Encode and Save.
type Option = options.Option[*config]

// WithCompression selects the payload compression algorithm.
// The default is CompressionZstd.
func WithCompression(compression CompressionType) Option {
	return options.NoError(func(cfg *config) {
		cfg.compression = compression
	})
}
