package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "hqxbrute", configBaseName)
	assert.Equal(t, "hqxbrute.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "run.report_every", reportEveryConfigKey)
	assert.Equal(t, "run.report_interval", reportIntervalConfigKey)
	assert.Equal(t, "ui.plain", uiPlainKey)
	assert.Equal(t, ".", defaultOutputDir)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "HQXBRUTE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"1s", time.Second},
		{"250ms", 250 * time.Millisecond},
		{" 2 ", 2 * time.Second},
		{"0.5", 500 * time.Millisecond},
		{"0", 0},
		{"soon", defaultReportInterval},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInterval(tt.raw))
		})
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("run:\n  parallel: 3\n"), 0o600))

	malformed := filepath.Join(dir, "malformed.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("run: [parallel\n  : 3"), 0o600))

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"missing file", filepath.Join(dir, "absent.yaml"), false},
		{"valid file", valid, false},
		{"malformed file", malformed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.SetConfigType("yaml")
			v.SetConfigFile(tt.path)

			err := readConfig(v)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "malformed.yaml")
				return
			}

			require.NoError(t, err)
		})
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(valid)
	require.NoError(t, readConfig(v))
	assert.Equal(t, 3, v.GetInt(runParallelConfigKey))
}

func TestRootCmd_ReportsUnreadableConfig(t *testing.T) {
	original := configReadErr
	t.Cleanup(func() { configReadErr = original })

	configReadErr = errors.New("read config hqxbrute.yaml: yaml: line 2: did not find expected node content")

	ran := false

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.AddCommand(&cobra.Command{
		Use: "noop",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ran = true
			return nil
		},
	})

	root.SetArgs(testArgs(t, "noop"))
	err := root.Execute()

	require.ErrorIs(t, err, configReadErr)
	assert.False(t, ran)
}
