package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hqxbrute.dev/pkg/hqxbrute/internal/adapter"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// chdirTemp runs the test inside a fresh temporary directory.
func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(testArgs(t, "init"))

	err = cmd.Execute()
	require.NoError(t, err)

	targetPath := filepath.Join(tempDir, configFileName)
	t.Cleanup(func() { _ = os.Remove(targetPath) })
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "report_every")
	assert.Contains(t, string(contents), "plain")
}

func TestInitCmd_WritesSitesTemplate(t *testing.T) {
	tempDir := chdirTemp(t)

	output := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(testArgs(t, "init", "--sites", "sites.conf"))

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "Site template written to sites.conf")

	contents, err := os.ReadFile(filepath.Join(tempDir, "sites.conf"))
	require.NoError(t, err)

	// The template holds only comments.
	sites, warnings, err := adapter.ParseSites(bytes.NewReader(contents), "sites.conf")
	require.NoError(t, err)
	assert.Empty(t, sites)
	assert.Empty(t, warnings)

	// Its examples parse once uncommented.
	var examples strings.Builder
	for _, line := range strings.Split(string(contents), "\n") {
		if strings.HasPrefix(line, "# 3:10") || strings.HasPrefix(line, "# 7:1") {
			examples.WriteString(strings.TrimPrefix(line, "# ") + "\n")
		}
	}

	sites, warnings, err = adapter.ParseSites(strings.NewReader(examples.String()), "sites.conf")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, sites, 2)
	assert.Equal(t, m.Site{Line: 7, Column: 1, Alphabet: []byte("AaEe")}, sites[1])
	assert.Len(t, sites[0].Alphabet, len(adapter.DefaultCharset))
}

func TestInitCmd_KeepsExistingSitesFile(t *testing.T) {
	tempDir := chdirTemp(t)

	sitesPath := filepath.Join(tempDir, "sites.conf")
	require.NoError(t, os.WriteFile(sitesPath, []byte("2:3 - ab\n"), 0o644))

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(testArgs(t, "init", "--sites", "sites.conf"))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	contents, err := os.ReadFile(sitesPath)
	require.NoError(t, err)
	assert.Equal(t, "2:3 - ab\n", string(contents))
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))
	t.Cleanup(func() { _ = os.Remove(targetPath) })

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(testArgs(t, "init"))

	err = cmd.Execute()
	require.Error(t, err)
}
