package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nunuhara/ainterp/internal/vmstring"
)

func writeIni(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "SaveData", cfg.SaveFolder)
	assert.Equal(t, vmstring.SJIS, cfg.CodePage)
}

func TestLoadOverridesSaveFolder(t *testing.T) {
	path := writeIni(t, "[Config]\nSaveFolder = Save\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Save", cfg.SaveFolder)
	assert.Equal(t, vmstring.SJIS, cfg.CodePage, "unset CodePage falls back to the SJIS default")
}

func TestLoadUTF8CodePage(t *testing.T) {
	path := writeIni(t, "[Config]\nSaveFolder = Save\nCodePage = UTF8\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, vmstring.UTF8, cfg.CodePage)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
