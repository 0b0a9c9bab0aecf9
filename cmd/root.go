package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/pokedex-mcp/config"
	"github.com/s0up4200/pokedex-mcp/pokeapi"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *pokeapi.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pokedex-mcp",
	Short: "Pokemon database access over MCP and the command line",
	Long: `pokedex-mcp serves Pokemon data from PokeAPI to MCP clients and
provides CLI commands for quick lookups, searches and type charts.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build metadata stamped in by the linker.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create PokeAPI client
	client, err = pokeapi.NewClient(cfg.PokeAPI.BaseURL, logger,
		pokeapi.WithTimeout(cfg.PokeAPI.Timeout),
		pokeapi.WithUserAgent(cfg.PokeAPI.UserAgent),
		pokeapi.WithRetryPolicy(retryPolicy(cfg.PokeAPI.MaxRetries)),
		pokeapi.WithBatchLimit(cfg.Batch.MaxConcurrent),
	)
	if err != nil {
		return fmt.Errorf("failed to create PokeAPI client: %w", err)
	}

	return nil
}

// retryPolicy derives the retry policy from the configured attempt cap.
func retryPolicy(maxRetries int) pokeapi.RetryPolicy {
	policy := pokeapi.DefaultRetryPolicy()
	if maxRetries > 0 {
		policy.MaxAttempts = maxRetries
	}
	return policy
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format. Color only when requested and stderr is a real
	// terminal, so piped output stays clean.
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
