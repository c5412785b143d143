package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTables(t *testing.T, es, en string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "es.json"), []byte(es), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(en), 0o644))
	return dir
}

func TestLoadAndResolve(t *testing.T) {
	dir := writeTables(t,
		`{"greeting": "hola", "only_es": "solo español"}`,
		`{"greeting": "hello"}`)

	b, err := Load(dir, LangES)
	require.NoError(t, err)

	assert.Equal(t, "hola", b.T(LangES, "greeting"))
	assert.Equal(t, "hello", b.T(LangEN, "greeting"))

	// Unknown language falls back to the default table.
	assert.Equal(t, "hola", b.T("fr", "greeting"))

	// Missing key renders as the key itself, in both languages.
	assert.Equal(t, "no_such_key", b.T(LangES, "no_such_key"))
	assert.Equal(t, "no_such_key", b.T(LangEN, "no_such_key"))
}

func TestLoadMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "es.json"), []byte(`{}`), 0o644))

	_, err := Load(dir, LangES)
	assert.Error(t, err)
}

func TestLoadMalformedFileFails(t *testing.T) {
	dir := writeTables(t, `{"ok": "si"}`, `not json`)

	_, err := Load(dir, LangES)
	assert.Error(t, err)
}

func TestToggle(t *testing.T) {
	assert.Equal(t, LangEN, Toggle(LangES))
	assert.Equal(t, LangES, Toggle(LangEN))

	// Double toggle lands back where it started.
	assert.Equal(t, LangES, Toggle(Toggle(LangES)))

	// Anything unexpected toggles back to es.
	assert.Equal(t, LangES, Toggle("de"))
}
