package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/clusterkit/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig("cluster", nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestParseConfig_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clusterkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k: 4\nmax_iter: 50\npolicy: reseed-farthest\nformat: json\n"), 0o644))

	cfg, err := parseConfig("cluster", []string{"-config", path, "-k", "5"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, 5, cfg.K, "flag overrides file")
	assert.Equal(t, 50, cfg.MaxIter)
	assert.Equal(t, "reseed-farthest", cfg.Policy)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, ",", cfg.Delimiter, "default kept")
}

func TestParseConfig_Errors(t *testing.T) {
	_, err := parseConfig("cluster", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k: [1"), 0o644))
	_, err = parseConfig("cluster", []string{"-config", path}, io.Discard)
	assert.Error(t, err)

	_, err = parseConfig("split", []string{"-k", "3"}, io.Discard)
	assert.Error(t, err, "-k is a cluster flag")
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CLUSTERKIT_TEST_VAR=from-file\n"), 0o644))

	t.Setenv("CLUSTERKIT_TEST_VAR", "")
	require.NoError(t, os.Unsetenv("CLUSTERKIT_TEST_VAR"))

	require.NoError(t, loadEnv(path))
	assert.Equal(t, "from-file", os.Getenv("CLUSTERKIT_TEST_VAR"))

	assert.NoError(t, loadEnv(filepath.Join(t.TempDir(), "missing.env")))
	assert.NoError(t, loadEnv(""))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	s, err := openStore(ctx, t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &blobstore.LocalStore{}, s)

	s, err = openStore(ctx, "file:///tmp")
	require.NoError(t, err)
	assert.IsType(t, &blobstore.LocalStore{}, s)

	for _, ref := range []string{"ftp://host/x", "minio://localhost:9000", "s3:///prefix"} {
		_, err := openStore(ctx, ref)
		assert.Error(t, err, ref)
	}
}
