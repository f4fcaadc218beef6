// Package alloc creates program-owned storage accounts at deterministic
// addresses.
//
// # Overview
//
// A program cannot hold private keys for the accounts it stores data in.
// Instead each account lives at a program-derived address (see package pda)
// and the program authorises its creation by presenting the derivation
// seeds. The Allocator builds a system-program create-account instruction
// funded for rent exemption and hands it to the host runtime together with
// the seeds.
//
// # Usage Example
//
//	a := alloc.New(runtime, rent, systemAccount)
//	seeds := append(account.BusSeeds(3), []byte{bump})
//	if err := a.Allocate(busAccount, programID, account.Space(account.KindBus), seeds, payer); err != nil {
//	    return err
//	}
//
//	// Or allocate and stamp the discriminator in one step:
//	bus, err := alloc.Create[account.BusMut](a, busAccount, programID, seeds, payer)
//
// # Failure Semantics
//
// The allocator performs no existence check and never retries. The runtime
// reports ErrAlreadyInitialized, ErrAddressMismatch or ErrInsufficientFunds;
// all are fatal to the enclosing operation.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Runtimes serialize invocations.
package alloc
