// Package config loads acctctl settings from a TOML file.
//
//	program_id    = "9UoV..."        # base58 program address
//	store_dir     = "./accounts"
//	payer_balance = 10000000000       # lamports credited to the payer per run
//
//	[rent]
//	lamports_per_byte_year = 3480
//	exemption_threshold    = 2.0
//
//	[log]
//	level  = "info"
//	format = "text"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dfuse-io/solana-go"

	"github.com/joshuapare/acctkit/runtime"
)

// Config holds CLI settings.
type Config struct {
	ProgramID    string     `toml:"program_id"`
	StoreDir     string     `toml:"store_dir"`
	PayerBalance uint64     `toml:"payer_balance"`
	Rent         RentConfig `toml:"rent"`
	Log          LogConfig  `toml:"log"`
}

// RentConfig overrides the runtime rent model.
type RentConfig struct {
	LamportsPerByteYear uint64  `toml:"lamports_per_byte_year"`
	ExemptionThreshold  float64 `toml:"exemption_threshold"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		ProgramID:    "",
		StoreDir:     "accounts",
		PayerBalance: 10_000_000_000,
		Rent: RentConfig{
			LamportsPerByteYear: runtime.DefaultLamportsPerByteYear,
			ExemptionThreshold:  runtime.DefaultExemptionThreshold,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is true.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.ProgramID != "" {
		if _, err := solana.PublicKeyFromBase58(c.ProgramID); err != nil {
			return fmt.Errorf("config: program_id: %w", err)
		}
	}
	if c.StoreDir == "" {
		return errors.New("config: store_dir is empty")
	}
	if c.Rent.ExemptionThreshold < 0 {
		return fmt.Errorf("config: negative exemption_threshold %v", c.Rent.ExemptionThreshold)
	}
	return nil
}

// Program returns the configured program address.
func (c Config) Program() (solana.PublicKey, error) {
	if c.ProgramID == "" {
		return solana.PublicKey{}, errors.New("config: program_id not set")
	}
	return solana.PublicKeyFromBase58(c.ProgramID)
}

// RuntimeRent returns the rent model for the runtime.
func (c Config) RuntimeRent() runtime.Rent {
	return runtime.Rent{
		LamportsPerByteYear: c.Rent.LamportsPerByteYear,
		ExemptionThreshold:  c.Rent.ExemptionThreshold,
	}
}
