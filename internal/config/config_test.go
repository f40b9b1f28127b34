package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCoverage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Coverage
	}{
		{"full lowercase", "full", CoverageFull},
		{"full mixed case", "FuLL", CoverageFull},
		{"ingress", "Ingress", CoverageIngress},
		{"egress with spaces", "  egress ", CoverageEgress},
		{"out of transit", "Out Of Transit", CoverageOutOfTransit},
		{"unknown defaults to full", "partial", CoverageFull},
		{"empty defaults to full", "", CoverageFull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCoverage(tt.in))
		})
	}
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/obs/20230115", "/obs/20230115"},
		{"single trailing slash", "/obs/20230115/", "/obs/20230115"},
		{"multiple trailing slashes", "/obs///", "/obs"},
		{"root path", "/", "/"},
		{"relative path", "obs", "obs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func validConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Username = "observer"
	cfg.Password = "secret"
	cfg.TIC = "12345678.01"
	cfg.TOI = "1234.01"
	cfg.Directory = t.TempDir()
	cfg.Coverage = "Full"
	cfg.TelSize = "0.36"
	cfg.Camera = "QHY600"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"all set", func(c *Config) {}, false},
		{"missing username", func(c *Config) { c.Username = "" }, true},
		{"missing password", func(c *Config) { c.Password = "" }, true},
		{"missing tic", func(c *Config) { c.TIC = "" }, true},
		{"missing toi", func(c *Config) { c.TOI = "" }, true},
		{"missing directory", func(c *Config) { c.Directory = "" }, true},
		{"directory does not exist", func(c *Config) { c.Directory = filepath.Join(c.Directory, "nope") }, true},
		{"missing telsize", func(c *Config) { c.TelSize = "" }, true},
		{"missing camera", func(c *Config) { c.Camera = "" }, true},
		{"missing coverage", func(c *Config) { c.Coverage = "" }, true},
		{"bad color mode", func(c *Config) { c.ColorMode = "sometimes" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_DirectoryIsFile(t *testing.T) {
	cfg := validConfig(t)
	f := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))
	cfg.Directory = f
	assert.Error(t, cfg.Validate())
}

func TestApplyProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"group: myteam\ntelsize: \"0.5\"\ncamera: ASI1600\ncoverage: Ingress\nnotes: cloudy at start\n"), 0o644))

	t.Run("fills unset fields", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ProfilePath = path
		require.NoError(t, cfg.ApplyProfile())
		assert.Equal(t, "myteam", cfg.Group)
		assert.Equal(t, "0.5", cfg.TelSize)
		assert.Equal(t, "ASI1600", cfg.Camera)
		assert.Equal(t, "Ingress", cfg.Coverage)
		assert.Equal(t, "cloudy at start", cfg.Notes)
	})

	t.Run("flags win over profile", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ProfilePath = path
		cfg.TelSize = "1.0"
		cfg.Camera = "STX"
		require.NoError(t, cfg.ApplyProfile())
		assert.Equal(t, "1.0", cfg.TelSize)
		assert.Equal(t, "STX", cfg.Camera)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ProfilePath = filepath.Join(dir, "absent.yaml")
		assert.Error(t, cfg.ApplyProfile())
	})

	t.Run("no profile is a no-op", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.ApplyProfile())
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("EXOFOP_USERNAME", "envuser")
	t.Setenv("EXOFOP_PASSWORD", "envpass")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	assert.Equal(t, "envuser", cfg.Username)
	assert.Equal(t, "envpass", cfg.Password)

	cfg = DefaultConfig()
	cfg.Username = "flaguser"
	cfg.Password = "flagpass"
	cfg.ApplyEnv()
	assert.Equal(t, "flaguser", cfg.Username)
	assert.Equal(t, "flagpass", cfg.Password)
}
