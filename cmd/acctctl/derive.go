package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/acctkit/pda"
)

func init() {
	rootCmd.AddCommand(newDeriveCmd())
}

func newDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive <seed>...",
		Short: "Derive a program address from seeds",
		Long: `The derive command finds the program-derived address for the given
seeds under the configured program, searching bump seeds from 255 down.

Seeds are text unless prefixed with hex:, b58: or u8:.

Example:
  acctctl derive --program <addr> bus u8:3
  acctctl derive proof b58:<authority> --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(args)
		},
	}
}

type deriveResult struct {
	Address string `json:"address"`
	Bump    uint8  `json:"bump"`
}

func runDerive(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	program, err := programKey(cfg)
	if err != nil {
		return err
	}
	seeds, err := parseSeeds(args)
	if err != nil {
		return err
	}
	addr, bump, err := pda.FindProgramAddress(seeds, program)
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}
	if jsonOut {
		return printJSON(deriveResult{Address: addr.String(), Bump: bump})
	}
	printInfo("%s (bump %d)\n", addr, bump)
	return nil
}
