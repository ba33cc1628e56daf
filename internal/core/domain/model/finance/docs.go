// Package finance provides the settlement-side domain model: debts a shop
// owes the platform and remittances the platform owes a shop.
//
// The package includes:
//   - Debt: outstanding shop liabilities, either derived from a negative
//     daily ledger balance (exactly one per shop and day, owned by the debt
//     synchronizer) or recorded manually by the admin workflow
//   - Remittance: a consolidated payout for one shop and day, netted against
//     pending debts and settled together with them when paid
//
// Consolidation is idempotent: re-running a settlement cycle refreshes the
// amounts of pending remittances without ever resetting their status.
package finance
