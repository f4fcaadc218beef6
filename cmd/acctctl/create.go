package main

import (
	"fmt"
	"strconv"

	"github.com/dfuse-io/solana-go"
	"github.com/spf13/cobra"

	"github.com/joshuapare/acctkit/account"
	"github.com/joshuapare/acctkit/alloc"
	"github.com/joshuapare/acctkit/pda"
	"github.com/joshuapare/acctkit/pkg/types"
	"github.com/joshuapare/acctkit/runtime"
)

var (
	createAuthority string
	createAdmin     string
)

func init() {
	cmd := newCreateCmd()
	cmd.Flags().StringVar(&createAuthority, "authority", "", "Proof authority address (proof only)")
	cmd.Flags().StringVar(&createAdmin, "admin", "", "Treasury admin address (treasury only)")
	rootCmd.AddCommand(cmd)
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <kind> [bus-id]",
		Short: "Allocate a program account in the store",
		Long: `The create command derives the account address for a record kind,
allocates a rent-exempt account of the right size owned by the program,
and stamps the record discriminator.

Example:
  acctctl create bus 3
  acctctl create proof --authority <addr>
  acctctl create treasury --admin <addr> --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
}

type createResult struct {
	Kind     string `json:"kind"`
	Address  string `json:"address"`
	Bump     uint8  `json:"bump"`
	Lamports uint64 `json:"lamports"`
	Space    int    `json:"space"`
}

func runCreate(args []string) error {
	kind, err := account.KindByName(args[0])
	if err != nil {
		return err
	}
	seeds, busID, err := createSeeds(kind, args[1:])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}

	addr, bump, err := pda.FindProgramAddress(seeds, s.program)
	if err != nil {
		s.close()
		return fmt.Errorf("derive: %w", err)
	}
	// The bump is part of the signing seeds.
	signerSeeds := append(seeds, []byte{bump})
	printVerbose("Derived %s with bump %d\n", addr, bump)

	a := alloc.New(s.ledger.Invoker(s.program), s.ledger.Rent(), s.ledger.Account(runtime.SystemProgramID))
	target := s.ledger.Account(addr)
	payer := s.ledger.Signer(defaultPayer)

	if err := createRecord(a, kind, target, s.program, signerSeeds, payer, busID, bump); err != nil {
		s.close()
		return err
	}
	res := createResult{
		Kind:     kind.String(),
		Address:  addr.String(),
		Bump:     bump,
		Lamports: target.Lamports,
		Space:    len(target.Data),
	}
	if err := s.close(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("Created %s account %s\n", res.Kind, res.Address)
	printInfo("  bump:     %d\n", res.Bump)
	printInfo("  space:    %d\n", res.Space)
	printInfo("  lamports: %d\n", res.Lamports)
	return nil
}

func createRecord(a *alloc.Allocator, kind account.Kind, target *types.AccountInfo, owner solana.PublicKey, seeds [][]byte, payer *types.AccountInfo, busID, bump uint8) error {
	switch kind {
	case account.KindBus:
		bus, err := alloc.Create[account.BusMut](a, target, owner, seeds, payer)
		if err != nil {
			return err
		}
		bus.SetID(uint64(busID))
	case account.KindProof:
		if _, err := alloc.Create[account.ProofMut](a, target, owner, seeds, payer); err != nil {
			return err
		}
	case account.KindTreasury:
		tr, err := alloc.Create[account.TreasuryMut](a, target, owner, seeds, payer)
		if err != nil {
			return err
		}
		tr.SetBump(uint64(bump))
		if createAdmin != "" {
			admin, err := solana.PublicKeyFromBase58(createAdmin)
			if err != nil {
				return fmt.Errorf("--admin: %w", err)
			}
			tr.SetAdmin(admin)
		}
	}
	return nil
}

// createSeeds returns the derivation seeds (without bump) for kind, and the
// bus id when kind is a bus.
func createSeeds(kind account.Kind, rest []string) ([][]byte, uint8, error) {
	switch kind {
	case account.KindBus:
		if len(rest) != 1 {
			return nil, 0, fmt.Errorf("bus requires an id argument (0-%d)", account.BusCount-1)
		}
		id, err := strconv.ParseUint(rest[0], 10, 8)
		if err != nil || id >= account.BusCount {
			return nil, 0, fmt.Errorf("invalid bus id %q (0-%d)", rest[0], account.BusCount-1)
		}
		return account.BusSeeds(uint8(id)), uint8(id), nil
	case account.KindProof:
		if len(rest) != 0 {
			return nil, 0, fmt.Errorf("proof takes no positional arguments")
		}
		if createAuthority == "" {
			return nil, 0, fmt.Errorf("proof requires --authority")
		}
		auth, err := solana.PublicKeyFromBase58(createAuthority)
		if err != nil {
			return nil, 0, fmt.Errorf("--authority: %w", err)
		}
		return account.ProofSeeds(auth), 0, nil
	case account.KindTreasury:
		if len(rest) != 0 {
			return nil, 0, fmt.Errorf("treasury takes no positional arguments")
		}
		return account.TreasurySeeds(), 0, nil
	}
	return nil, 0, fmt.Errorf("%w: %s", account.ErrUnknownKind, kind)
}
