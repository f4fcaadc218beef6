package main

import (
	"fmt"

	"github.com/dfuse-io/solana-go"

	"github.com/joshuapare/acctkit/config"
	"github.com/joshuapare/acctkit/internal/logger"
	"github.com/joshuapare/acctkit/runtime"
	"github.com/joshuapare/acctkit/store"
)

// defaultPayer funds allocations made from the command line. It only exists
// for the duration of one command and is never persisted.
var defaultPayer = solana.PublicKey{'a', 'c', 'c', 't', 'c', 't', 'l'}

// session is a ledger over the on-disk account store.
type session struct {
	cfg     config.Config
	program solana.PublicKey
	dir     *store.Dir
	ledger  *runtime.Ledger
}

func openSession(cfg config.Config) (*session, error) {
	program, err := programKey(cfg)
	if err != nil {
		return nil, err
	}
	dir, err := store.Open(cfg.StoreDir)
	if err != nil {
		return nil, err
	}
	ledger := runtime.NewLedger(runtime.Options{
		Rent:    cfg.RuntimeRent(),
		Backend: dir,
		Logger:  logger.L,
	})
	accounts, err := dir.Accounts()
	if err != nil {
		dir.Close()
		return nil, fmt.Errorf("load store: %w", err)
	}
	for _, a := range accounts {
		ledger.Put(a)
	}
	if err := ledger.Fund(defaultPayer, cfg.PayerBalance); err != nil {
		dir.Close()
		return nil, err
	}
	logger.Debug("session open", "store", cfg.StoreDir, "accounts", len(accounts))
	return &session{cfg: cfg, program: program, dir: dir, ledger: ledger}, nil
}

// close flushes mapped account data and releases the store.
func (s *session) close() error {
	return s.dir.Close()
}
