// Package types defines the collaborator contracts shared by the account
// layer, the allocator and host runtimes: borrowed account handles, the rent
// model, the signed-invoke primitive and the typed error taxonomy.
//
// Design goals:
//   - Account handles are plain (key, data, owner) triples supplied by the
//     caller; nothing here resolves account lookups.
//   - Typed errors with stable categories (layout/instruction/allocation).
//   - No behaviour beyond what a runtime must provide.
package types
