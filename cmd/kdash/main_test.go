package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taishi66/kdash/internal/config"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "kdash dev\n", out.String())
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *config.AppConfig)
	}{
		{
			name: "no flags keeps file values",
			args: nil,
			check: func(t *testing.T, cfg *config.AppConfig) {
				assert.Equal(t, "http://file:9090", cfg.Server)
				assert.Equal(t, "shop", cfg.Namespace)
				assert.Equal(t, "fr", cfg.Language)
			},
		},
		{
			name: "flags win",
			args: []string{"--server", "http://flag:9090", "-n", "ops", "--lang", "en"},
			check: func(t *testing.T, cfg *config.AppConfig) {
				assert.Equal(t, "http://flag:9090", cfg.Server)
				assert.Equal(t, "ops", cfg.Namespace)
				assert.Equal(t, "en", cfg.Language)
			},
		},
		{
			name: "explicit empty namespace means all namespaces",
			args: []string{"--namespace="},
			check: func(t *testing.T, cfg *config.AppConfig) {
				assert.Equal(t, "", cfg.Namespace)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCommand(&bytes.Buffer{})
			require.NoError(t, cmd.Flags().Parse(tt.args))

			cfg := config.DefaultConfig()
			cfg.Server = "http://file:9090"
			cfg.Namespace = "shop"
			cfg.Language = "fr"

			opts := &options{}
			opts.server, _ = cmd.Flags().GetString("server")
			opts.namespace, _ = cmd.Flags().GetString("namespace")
			opts.lang, _ = cmd.Flags().GetString("lang")

			applyOverrides(cfg, cmd, opts)
			tt.check(t, cfg)
		})
	}
}

func TestApplyOverrides_LangFromEnvironment(t *testing.T) {
	t.Setenv("LANG", "fr_FR.UTF-8")
	cmd := newRootCommand(&bytes.Buffer{})
	cfg := config.DefaultConfig()
	cfg.Language = ""

	applyOverrides(cfg, cmd, &options{})
	assert.Equal(t, "fr_FR.UTF-8", cfg.Language)
}
