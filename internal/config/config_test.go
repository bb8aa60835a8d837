package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "allProducts", cfg.Storage.Key)
	assert.Equal(t, "https://api.emailjs.com", cfg.EmailJS.BaseURL)
	assert.Equal(t, 1, cfg.EmailJS.MaxRequestsPerSecond)
	assert.Empty(t, cfg.EmailJS.ServiceID)
	assert.Empty(t, cfg.EmailJS.PublicKey)
}

func TestLoad_File(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
storage:
  driver: postgres
emailjs:
  service_id: service_from_file
  template_id: template_from_file
  public_key: key_from_file
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "service_from_file", cfg.EmailJS.ServiceID)
	assert.Equal(t, "template_from_file", cfg.EmailJS.TemplateID)
	assert.Equal(t, "key_from_file", cfg.EmailJS.PublicKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, `
emailjs:
  public_key: key_from_file
`)
	t.Setenv("EMAILJS_PUBLIC_KEY", "key_from_env")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "key_from_env", cfg.EmailJS.PublicKey)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("UnknownDriver", func(t *testing.T) {
		dir := writeConfig(t, "storage:\n  driver: localstorage\n")
		_, err := LoadFrom(dir)
		assert.Error(t, err)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		dir := writeConfig(t, "server: [port\n")
		_, err := LoadFrom(dir)
		assert.Error(t, err)
	})
}
