package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	threshold float64
	order     []string
}

func TestApply_Order(t *testing.T) {
	cfg := &testConfig{}
	err := Apply(cfg,
		NoError(func(c *testConfig) { c.order = append(c.order, "first") }),
		NoError(func(c *testConfig) { c.order = append(c.order, "second") }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, cfg.order)
}

func TestApply_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	cfg := &testConfig{}
	err := Apply(cfg,
		New(func(c *testConfig) error {
			c.threshold = 0.5
			return nil
		}),
		New(func(*testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.threshold = 1.0 }),
	)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0.5, cfg.threshold, "options after the failing one must not run")
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{threshold: 2.0}
	require.NoError(t, Apply(cfg))
	assert.Equal(t, 2.0, cfg.threshold)
}
