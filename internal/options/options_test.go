package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value int
	name  string
}

func TestApply(t *testing.T) {
	cfg := testConfig{value: 1}

	err := Apply(&cfg,
		NoError(func(c *testConfig) { c.value = 42 }),
		NoError(func(c *testConfig) { c.name = "set" }),
	)
	require.NoError(t, err)
	require.Equal(t, 42, cfg.value)
	require.Equal(t, "set", cfg.name)
}

func TestApplyStopsOnError(t *testing.T) {
	errBad := errors.New("bad option")
	cfg := testConfig{}

	err := Apply(&cfg,
		NoError(func(c *testConfig) { c.value = 1 }),
		func(*testConfig) error { return errBad },
		NoError(func(c *testConfig) { c.value = 2 }),
	)
	require.ErrorIs(t, err, errBad)
	require.Equal(t, 1, cfg.value)
}

func TestApplyNoOptions(t *testing.T) {
	cfg := testConfig{value: 7}
	require.NoError(t, Apply(&cfg))
	require.Equal(t, 7, cfg.value)
}
