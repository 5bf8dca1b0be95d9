package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"testforge.dev/pkg/testforge/internal/adapter"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "testforge"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	dotEnvFileName   = ".env"

	outputFlagName      = "output"
	excludeFlagName     = "exclude"
	gitignoreFlagName   = "gitignore"
	runParallelFlagName = "parallel"
	dryRunFlagName      = "dry-run"
	providerFlagName    = "provider"
	modelFlagName       = "model"
	timeoutFlagName     = "timeout"
	baseDirFlagName     = "base-dir"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	runParallelConfigKey = "run.parallel"
	excludeConfigKey     = "paths.exclude"
	gitignoreConfigKey   = "paths.gitignore"
	baseDirConfigKey     = "paths.base_dir"

	oracleProviderKey = "oracle.provider"
	oracleModelKey    = "oracle.model"
	oracleTimeoutKey  = "oracle.timeout"
	oracleRPMKey      = "oracle.rpm"
	oracleBaseURLKey  = "oracle.base_url"
	oracleAPIKeyKey   = "oracle.api_key"

	defaultReportsDir  = ".testforge-reports"
	defaultRunParallel = 1
	defaultGitignore   = false
	defaultProvider    = adapter.ProviderGemini
	defaultRPM         = 0

	envPrefix = "TESTFORGE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".testforge.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr holds the failure of the config file read done in init.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(gitignoreConfigKey, defaultGitignore)
	viper.SetDefault(baseDirConfigKey, "")

	viper.SetDefault(oracleProviderKey, defaultProvider)
	viper.SetDefault(oracleModelKey, "")
	viper.SetDefault(oracleTimeoutKey, adapter.DefaultOracleTimeout.String())
	viper.SetDefault(oracleRPMKey, defaultRPM)
	viper.SetDefault(oracleBaseURLKey, "")

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

	return fmt.Errorf("read %s: %w", v.ConfigFileUsed(), err)
}

// logConfigReadError reports a config file that exists but could not be
// loaded. Runs once the logger is configured.
func logConfigReadError() {
	if configReadErr != nil {
		slog.Warn("Ignoring unreadable config file, using defaults", "error", configReadErr)
	}
}

// loadDotEnv exports variables from a .env file that are not already set.
// A missing file is not an error.
func loadDotEnv(path string) {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}

	slog.Warn("Failed to load env file", "path", path, "error", err)
}

// oracleConfig assembles the immutable oracle configuration from viper. The
// credential comes from oracle.api_key, falling back to the provider's own
// environment variable.
func oracleConfig() adapter.OracleConfig {
	provider := strings.ToLower(strings.TrimSpace(viper.GetString(oracleProviderKey)))

	apiKey := viper.GetString(oracleAPIKeyKey)
	if apiKey == "" {
		if env := adapter.CredentialEnv(provider); env != "" {
			apiKey = strings.TrimSpace(os.Getenv(env))
		}
	}

	timeout := viper.GetDuration(oracleTimeoutKey)
	if timeout <= 0 {
		timeout = adapter.DefaultOracleTimeout
	}

	return adapter.OracleConfig{
		Provider:          provider,
		Model:             viper.GetString(oracleModelKey),
		APIKey:            apiKey,
		BaseURL:           viper.GetString(oracleBaseURLKey),
		Timeout:           timeout,
		RequestsPerMinute: viper.GetInt(oracleRPMKey),
	}
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
