package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dealerdesk/quote-engine/internal/config"
	"github.com/dealerdesk/quote-engine/internal/engine"
	"github.com/dealerdesk/quote-engine/internal/optimizer"
	"github.com/dealerdesk/quote-engine/internal/server"
	"github.com/dealerdesk/quote-engine/pkg/constants"
	"github.com/dealerdesk/quote-engine/pkg/output"
	"github.com/dealerdesk/quote-engine/pkg/tax"
	"github.com/dealerdesk/quote-engine/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// serve runs the HTTP API until the process is terminated.
func serve(logger *zap.Logger, serverConfigLocation, addressOverride string) {
	serverConf, err := server.LoadConfig(serverConfigLocation)
	if err != nil {
		logger.Fatal("failed to load server configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	address := serverConf.Address
	if addressOverride != "" {
		address = addressOverride
	}

	handler := server.NewHandler(logger, serverConf.RequestSizeBytes(), version)

	logger.Info("starting quote API server",
		zap.String("op", "main"),
		zap.String("address", address),
		zap.String("version", version),
	)

	if err := http.ListenAndServe(address, handler); err != nil {
		logger.Fatal("server terminated",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to quote configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	solve := flag.Bool("solve", false, "solve cash down for quotes with a payment target")
	serveFlag := flag.Bool("serve", false, "run the HTTP quote API instead of the CLI pipeline")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	address := flag.String("address", "", "listen address override for -serve")
	versionFlag := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	if *serveFlag {
		logger, err := initializeLogger(config.LoggingConfig{Format: "console"}, *logLevel)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
			return
		}
		defer func() {
			_ = logger.Sync()
		}()
		serve(logger, *serverConfigLocation, *address)
		return
	}

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	calc := engine.NewCalculator(logger, tax.NewEngine(conf.TaxRate))

	// Compute all quotes against their programs.
	results, err := conf.ComputeQuotes(logger, calc)
	if err != nil {
		logger.Fatal("failed to compute quotes",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Solve cash down for quotes carrying a payment target.
	if *solve {
		runner, err := optimizer.NewRunner(logger, conf, calc)
		if err != nil {
			logger.Fatal("failed to initialize solver",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		solved, err := runner.Run()
		if err != nil {
			logger.Fatal("failed to solve payment targets",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		output.SolverFormat(solved.Summaries)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	}
}
