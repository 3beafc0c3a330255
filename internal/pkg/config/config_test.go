package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig("")
	require.NoError(t, err)
	assert.Len(t, c.Departments, 8)
	assert.Equal(t, "Manage your organization's workforce", c.Subtitles["/employees"])
}

func TestNewConfigFromFile(t *testing.T) {
	path := writeCatalog(t, `
brand: Acme People
departments:
  - Engineering
  - Legal
`)

	c, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme People", c.Brand)
	assert.Equal(t, []string{"Engineering", "Legal"}, c.Departments)
	assert.NotEmpty(t, c.Subtitles["/"], "subtitles keep their defaults")
}

func TestNewConfigRejectsBadCatalogs(t *testing.T) {
	_, err := NewConfig(writeCatalog(t, "brand: x\n"))
	assert.Error(t, err)

	_, err = NewConfig(writeCatalog(t, "departments: [Sales, Sales]\n"))
	assert.Error(t, err)

	_, err = NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
