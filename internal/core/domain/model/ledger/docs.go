// Package ledger provides the per-shop, per-day accounting aggregate and the
// impact calculus that keeps it consistent with the order store.
//
// The package includes:
//   - Delta: the signed contribution of one order snapshot, closed under
//     addition and negation
//   - ImpactOf: a pure function mapping an order snapshot and its shop's
//     billing configuration to a Delta, covering every (status, payment
//     status) combination
//   - DailyBalance: the (shop, report date) aggregate fed by deltas
//
// The central invariant is snapshot consistency: a balance row always equals
// the sum of the current-snapshot impacts of the orders in scope, never the
// accumulation of superseded states. Mutating flows guarantee this by
// reversing the impact of the "before" snapshot and applying the impact of
// the "after" snapshot inside a single transaction.
package ledger
