// Package runtime is an in-process host for program account logic. It keeps
// a ledger of accounts, answers rent queries and executes the system
// program's create-account instruction on behalf of a calling program,
// honouring program-derived signers.
//
// It exists so the account layer and the allocator can be exercised end to
// end without a validator: the same checks a real host applies to a signed
// create-account (signer derivation, unused target, payer balance) are
// applied here, and the resulting buffers are what typed views operate on.
//
// A Ledger is not safe for concurrent use. Like a real host it processes one
// invocation at a time.
package runtime
