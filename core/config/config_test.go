package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/aiservice/core/config"
)

type listConfig struct {
	Origins config.List `env:"TEST_CONFIG_ORIGINS" envDefault:"http://a.test, http://b.test"`
}

type portConfig struct {
	Port int `env:"TEST_CONFIG_PORT" envDefault:"8000"`
}

type badConfig struct {
	Port int `env:"TEST_CONFIG_BAD_PORT"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults and caching", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_PORT", "9000")

		var first portConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, 9000, first.Port)

		t.Setenv("TEST_CONFIG_PORT", "9001")
		var second portConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, 9000, second.Port, "cached value is reused")
	})

	t.Run("list default", func(t *testing.T) {
		var cfg listConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, config.List{"http://a.test", "http://b.test"}, cfg.Origins)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_BAD_PORT", "not-a-number")

		var cfg badConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}

func TestListUnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    config.List
		wantErr bool
	}{
		{name: "comma separated", in: "http://localhost:3000,http://localhost:5173", want: config.List{"http://localhost:3000", "http://localhost:5173"}},
		{name: "json array", in: `["https://app.test", "https://admin.test"]`, want: config.List{"https://app.test", "https://admin.test"}},
		{name: "spaces and blanks", in: " a , ,b ", want: config.List{"a", "b"}},
		{name: "empty", in: "", want: config.List{}},
		{name: "wildcard", in: "*", want: config.List{"*"}},
		{name: "broken json", in: `["a",`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var l config.List
			err := l.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, l)
		})
	}
}
