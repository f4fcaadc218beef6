package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dfuse-io/solana-go"
	"github.com/spf13/cobra"

	"github.com/joshuapare/acctkit/config"
	"github.com/joshuapare/acctkit/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string
	programArg string
	storeArg   string
)

var rootCmd = &cobra.Command{
	Use:   "acctctl",
	Short: "Create and inspect program account data",
	Long: `acctctl derives program addresses, allocates discriminator-tagged
accounts into a local account store, and decodes account data for
inspection.`,
	Version:      "0.1.0",
	SilenceUsage: true,
}

func init() {
	// Assigned here: setupLogging reads rootCmd's flags.
	rootCmd.PersistentPreRunE = setupLogging

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "acctctl.toml", "Path to the TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&programArg, "program", "", "Program address (overrides config)")
	rootCmd.PersistentFlags().StringVar(&storeArg, "store", "", "Account store directory (overrides config)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file (optional when left at its default) and
// applies flag overrides.
func loadConfig() (config.Config, error) {
	optional := !rootCmd.PersistentFlags().Changed("config")
	cfg, err := config.Load(configPath, optional)
	if err != nil {
		return config.Config{}, err
	}
	if programArg != "" {
		cfg.ProgramID = programArg
	}
	if storeArg != "" {
		cfg.StoreDir = storeArg
	}
	return cfg, cfg.Validate()
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	return logger.Init(logger.Options{
		Enabled: !quiet,
		Format:  cfg.Log.Format,
		Level:   level,
		Writer:  cmd.ErrOrStderr(),
	})
}

func programKey(cfg config.Config) (solana.PublicKey, error) {
	p, err := cfg.Program()
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w (use --program or program_id)", err)
	}
	return p, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
