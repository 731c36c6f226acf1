package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"hqxbrute.dev/pkg/hqxbrute/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "hqxbrute"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName         = "output"
	plainFlagName          = "plain"
	verboseFlagName        = "verbose"
	logFileFlagName        = "log-file"
	runParallelFlagName    = "parallel"
	reportEveryFlagName    = "report-every"
	reportIntervalFlagName = "report-interval"
	lineEndingFlagName     = "line-ending"

	runParallelConfigKey    = "run.parallel"
	reportEveryConfigKey    = "run.report_every"
	reportIntervalConfigKey = "run.report_interval"
	lineEndingConfigKey     = "encode.line_ending"
	uiPlainKey              = "ui.plain"

	defaultOutputDir      = "."
	defaultRunParallel    = 1
	defaultReportEvery    = domain.DefaultReportEvery
	defaultReportInterval = domain.DefaultReportInterval
	defaultLineEnding     = "lf"
	defaultUIPlain        = false

	envPrefix = "HQXBRUTE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".hqxbrute.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(reportEveryConfigKey, defaultReportEvery)
	viper.SetDefault(reportIntervalConfigKey, defaultReportInterval)
	viper.SetDefault(lineEndingConfigKey, defaultLineEnding)
	viper.SetDefault(uiPlainKey, defaultUIPlain)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configReadErr = readConfig(viper.GetViper())
}

// configReadErr holds a config file that exists but could not be read. It is
// reported once the logger is configured.
var configReadErr error

// readConfig loads the config file into v. A missing file is not an error.
func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// reportInterval reads the progress interval, accepting a duration string
// ("1s", "250ms") or a number of seconds.
func reportInterval() time.Duration {
	return parseInterval(viper.GetString(reportIntervalConfigKey))
}

func parseInterval(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(seconds * float64(time.Second))
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Invalid report interval, using default", "value", raw, "default", defaultReportInterval)
		return defaultReportInterval
	}

	return d
}
