package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/acctkit/account"
)

func init() {
	rootCmd.AddCommand(newKindsCmd())
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List record kinds and their discriminators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds()
		},
	}
}

type kindInfo struct {
	Name          string `json:"name"`
	Discriminator uint8  `json:"discriminator"`
	Size          int    `json:"size"`
	Space         int    `json:"space"`
}

func runKinds() error {
	var out []kindInfo
	for _, d := range account.Decls() {
		out = append(out, kindInfo{
			Name:          d.Name,
			Discriminator: uint8(d.Kind),
			Size:          d.Size,
			Space:         account.Space(d.Kind),
		})
	}
	if jsonOut {
		return printJSON(out)
	}
	for _, k := range out {
		printInfo("%-9s %d  fields=%d bytes  account=%d bytes\n", k.Name, k.Discriminator, k.Size, k.Space)
	}
	return nil
}
