package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/acctkit/account"
	"github.com/joshuapare/acctkit/internal/format"
	"github.com/joshuapare/acctkit/store"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

type listEntry struct {
	Address  string `json:"address"`
	Kind     string `json:"kind"`
	Lamports uint64 `json:"lamports"`
	Size     int    `json:"size"`
}

func runList() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir, err := store.Open(cfg.StoreDir)
	if err != nil {
		return err
	}
	defer dir.Close()

	accounts, err := dir.Accounts()
	if err != nil {
		return err
	}
	entries := make([]listEntry, 0, len(accounts))
	for _, a := range accounts {
		kind := "unknown"
		if tag, ok := format.Tag(a.Data); ok {
			if k, err := account.ParseKind(tag); err == nil {
				kind = k.String()
			}
		}
		entries = append(entries, listEntry{
			Address:  a.Key.String(),
			Kind:     kind,
			Lamports: a.Lamports,
			Size:     len(a.Data),
		})
	}

	if jsonOut {
		return printJSON(entries)
	}
	for _, e := range entries {
		printInfo("%-44s %-9s %6d bytes %d lamports\n", e.Address, e.Kind, e.Size, e.Lamports)
	}
	printVerbose("%d account(s)\n", len(entries))
	return nil
}
