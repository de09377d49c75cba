package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"toolmanager/internal/config"
	"toolmanager/internal/tools"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	debugMode  = flag.Bool("d", false, "Enable debug mode")
	logFile    = flag.String("log-file", "", "Log file path (logs disabled by default)")
	configPath = flag.String("config", "config.json", "Config file path")
	exportFlag = flag.String("export", "", "Print tool definitions for a provider (openai, anthropic) and exit")
	version    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("toolmanager", Version)
		return
	}

	logger, closer, err := initLogger(*debugMode, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}
	logger.Info().Str("version", Version).Msg("Toolmanager starting")

	if *exportFlag != "" {
		if err := exportTools(os.Stdout, tools.NewBuiltinRegistry(), *exportFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Check if we're running in batch mode (with "-" argument)
	args := flag.Args()
	if len(args) > 0 && args[0] == "-" {
		runBatchMode(logger)
		return
	}

	runConsoleMode(logger)
}

func initLogger(debug bool, logFilePath string) (zerolog.Logger, io.Closer, error) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// No logging to console by default
	var output io.Writer = io.Discard
	var closer io.Closer
	if logFilePath != "" {
		file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
		closer = file
	}

	return zerolog.New(output).With().Timestamp().Logger(), closer, nil
}

// newDispatcher loads the configuration and builds a dispatcher over the
// built-in tools. Configuration warnings are logged, not fatal.
func newDispatcher(path string, logger zerolog.Logger, approver tools.Approver) (*config.Config, *tools.Dispatcher, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	registry := tools.NewBuiltinRegistry()
	for _, warning := range cfg.Validate(registry) {
		logger.Warn().Str("field", warning.Field).Msg(warning.Message)
	}

	opts := cfg.DispatcherOptions()
	opts.Logger = &logger
	opts.Approver = approver
	dispatcher, err := tools.NewDispatcher(registry, opts)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug().
		Str("workdir", dispatcher.WorkDir()).
		Strs("tools", toolNameStrings(registry.GetToolNames())).
		Msg("Dispatcher ready")
	return cfg, dispatcher, nil
}

func toolNameStrings(names []tools.ToolName) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = string(name)
	}
	return out
}
