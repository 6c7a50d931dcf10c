package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/cache"
	"github.com/spf13/pflag"

	"github.com/thushan/ctoken/internal/adapter/customtranslator"
	"github.com/thushan/ctoken/internal/adapter/identity"
	"github.com/thushan/ctoken/internal/app"
	"github.com/thushan/ctoken/internal/config"
	"github.com/thushan/ctoken/internal/logger"
	"github.com/thushan/ctoken/internal/util"
	"github.com/thushan/ctoken/internal/version"
	"github.com/thushan/ctoken/pkg/format"
	"github.com/thushan/ctoken/theme"
)

func main() {
	startTime := time.Now()

	flags := pflag.NewFlagSet(version.ShortName, pflag.ExitOnError)
	configFile := flags.StringP("config", "c", "", "path to a YAML config file")
	showVersion := flags.Bool("version", false, "print version information and exit")
	noWait := flags.Bool("no-wait", false, "exit without waiting for a keypress")
	flags.String("flow", config.FlowInteractive, "sign-in flow when no cached account works: interactive or device_code")
	flags.String("workspace", "", "Custom Translator workspace id")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	_ = flags.Parse(os.Args[1:])

	vlog := log.New(os.Stderr, "", 0)
	version.PrintVersionInfo(*showVersion, vlog)
	if *showVersion {
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *noWait {
		cfg.Console.WaitForKey = false
	}

	// setup: logging goes to stderr, stdout is reserved for the token and responses
	logInstance, styledLogger, cleanup, err := logger.NewWithTheme(buildLoggerConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	slog.SetDefault(logInstance)

	styledLogger.Info("Initialising", "version", version.Version, "pid", os.Getpid(), "config", cfg.Filename)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var tokenCache cache.ExportReplace
	if !cfg.Auth.DisableCache {
		fileCache := identity.NewFileCache(cfg.Auth.CacheFile)
		styledLogger.Debug("Using token cache", "path", fileCache.Path())
		tokenCache = fileCache
	}

	provider, err := identity.NewMSALProvider(cfg.Auth, tokenCache, os.Stdout, styledLogger)
	if err != nil {
		logger.FatalWithLogger(styledLogger, "Failed to create identity provider", "error", err)
	}

	printer := app.NewPrinter(os.Stdout, theme.GetTheme(cfg.Logging.Theme), util.ShouldUseColors())
	application, err := app.New(
		cfg,
		identity.NewAcquirer(provider, styledLogger),
		customtranslator.NewClient(cfg.API, styledLogger),
		printer,
		styledLogger,
	)
	if err != nil {
		logger.FatalWithLogger(styledLogger, "Failed to create application", "error", err)
	}

	if err := application.Run(ctx); err != nil {
		logger.FatalWithLogger(styledLogger, "Run failed", "error", err, "elapsed", format.Duration(time.Since(startTime)))
	}

	styledLogger.Debug("Finished", "elapsed", format.Duration(time.Since(startTime)))
}

func buildLoggerConfig(cfg *config.Config) *logger.Config {
	return &logger.Config{
		Level:      cfg.Logging.Level,
		FileOutput: cfg.Logging.FileOutput,
		LogDir:     cfg.Logging.LogDir,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Theme:      cfg.Logging.Theme,
		Writer:     os.Stderr,
	}
}
