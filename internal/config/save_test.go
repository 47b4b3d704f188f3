package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/envy/internal/config"
)

func TestSave_WritesValidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	p, err := config.CompilePattern(".*work.*")
	require.NoError(t, err)

	cfg := &config.Config{
		Envs: []string{"/home/user/work/.env"},
		Paths: []config.Rule{
			{Pattern: p, Env: []string{"MODE=work", "DEBUG=1"}},
		},
	}

	err = config.Save(path, cfg)
	require.NoError(t, err)

	// 파일 권한 0600 확인
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Load로 round-trip 검증
	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Paths, 1)
	assert.Equal(t, ".*work.*", loaded.Paths[0].Pattern.String())
	assert.Equal(t, []string{"MODE=work", "DEBUG=1"}, loaded.Paths[0].Env)
	assert.Equal(t, []string{"/home/user/work/.env"}, loaded.Envs)
}

func TestSave_CreatesConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "envy", "config.toml")

	err := config.Save(path, &config.Config{Envs: []string{"/a/.env"}})
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/.env"}, loaded.Envs)
}

func TestSave_RoundTripPreservesRuleOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	patterns := []string{".*foo.*", ".*bar.*", ".*"}
	cfg := &config.Config{}
	for i, expr := range patterns {
		p, err := config.CompilePattern(expr)
		require.NoError(t, err)
		cfg.Paths = append(cfg.Paths, config.Rule{
			Pattern: p,
			Env:     []string{"N=" + string(rune('0'+i))},
		})
	}

	require.NoError(t, config.Save(path, cfg))
	loaded, err := config.Load(path)
	require.NoError(t, err)

	require.Len(t, loaded.Paths, 3)
	for i, expr := range patterns {
		assert.Equal(t, expr, loaded.Paths[i].Pattern.String())
	}
}
