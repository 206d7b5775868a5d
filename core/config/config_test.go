package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebeWizard/flashcard-server/core/config"
)

// Each test declares its own config type so the per-type cache cannot leak
// values between tests.

func TestLoadDefaults(t *testing.T) {
	type testCfg struct {
		Host    string        `env:"CFG_TEST_HOST" envDefault:"localhost"`
		Port    int           `env:"CFG_TEST_PORT" envDefault:"5432"`
		Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"15s"`
	}

	var cfg testCfg
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	type testCfg struct {
		Host string `env:"CFG_ENV_HOST" envDefault:"localhost"`
		Port int    `env:"CFG_ENV_PORT" envDefault:"5432"`
	}

	t.Setenv("CFG_ENV_HOST", "db.internal")
	t.Setenv("CFG_ENV_PORT", "6543")

	var cfg testCfg
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
}

func TestLoadRequiredMissing(t *testing.T) {
	type testCfg struct {
		Secret string `env:"CFG_REQUIRED_SECRET,required"`
	}

	var cfg testCfg
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CFG_REQUIRED_SECRET")
}

func TestLoadCachesPerType(t *testing.T) {
	type testCfg struct {
		Value string `env:"CFG_CACHED_VALUE" envDefault:"first"`
	}

	t.Setenv("CFG_CACHED_VALUE", "first")

	var first testCfg
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// The cache serves the original values even after the environment moves.
	t.Setenv("CFG_CACHED_VALUE", "second")

	var second testCfg
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoadNilPointer(t *testing.T) {
	var cfg *struct {
		Value string `env:"CFG_NIL_VALUE"`
	}
	require.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
}

func TestMustLoadPanicsOnFailure(t *testing.T) {
	type testCfg struct {
		Token string `env:"CFG_MUST_TOKEN,required"`
	}

	assert.Panics(t, func() {
		var cfg testCfg
		config.MustLoad(&cfg)
	})
}

func TestMustLoadReturnsValues(t *testing.T) {
	type testCfg struct {
		Name string `env:"CFG_MUST_NAME" envDefault:"flashcards"`
	}

	var cfg testCfg
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.Equal(t, "flashcards", cfg.Name)
}
