package main

import (
	"fmt"

	"github.com/dfuse-io/solana-go"
	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	"github.com/joshuapare/acctkit/account"
	"github.com/joshuapare/acctkit/store"
)

var inspectRaw bool

func init() {
	cmd := newInspectCmd()
	cmd.Flags().BoolVar(&inspectRaw, "raw", false, "Include the raw account data (base58)")
	rootCmd.AddCommand(cmd)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <address>",
		Short: "Decode an account from the store",
		Long: `The inspect command loads an account from the store, checks its
discriminator and prints its fields.

Example:
  acctctl inspect <addr>
  acctctl inspect <addr> --raw --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
}

type inspectResult struct {
	Address  string          `json:"address"`
	Owner    string          `json:"owner"`
	Lamports uint64          `json:"lamports"`
	Kind     string          `json:"kind"`
	Fields   []account.Field `json:"fields"`
	Raw      string          `json:"raw,omitempty"`
}

func runInspect(args []string) error {
	key, err := solana.PublicKeyFromBase58(args[0])
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", args[0], err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir, err := store.Open(cfg.StoreDir)
	if err != nil {
		return err
	}
	defer dir.Close()

	info, err := dir.Load(key)
	if err != nil {
		return err
	}
	kind, fields, err := account.Describe(info.Data)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	res := inspectResult{
		Address:  key.String(),
		Owner:    info.Owner.String(),
		Lamports: info.Lamports,
		Kind:     kind.String(),
		Fields:   fields,
	}
	if inspectRaw {
		res.Raw = base58.Encode(info.Data)
	}
	if jsonOut {
		return printJSON(res)
	}

	printInfo("Account: %s\n", res.Address)
	printInfo("  owner:    %s\n", res.Owner)
	printInfo("  lamports: %d\n", res.Lamports)
	printInfo("  kind:     %s\n", res.Kind)
	for _, f := range fields {
		printInfo("  %-22s %s\n", f.Name+":", f.Value)
	}
	if inspectRaw {
		printInfo("  raw: %s\n", res.Raw)
	}
	return nil
}
