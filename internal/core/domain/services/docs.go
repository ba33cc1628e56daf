// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the reconciliation core. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DebtSynchronizer: A domain service keeping the derived daily-balance debt
//     of a shop in step with its ledger balance
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
