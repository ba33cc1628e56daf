// Package courier provides domain entities and business logic for courier cash
// accountability. It tracks the cash a courier collects on deliveries, the cash
// they hand back, and the cash that goes missing.
//
// The package includes:
//   - Courier: The aggregate root holding courier identity
//   - CashTransaction: A cash event, either a remittance (cash handed over to
//     the platform) or an expense (cash spent on behalf of the platform)
//   - Shortfall: Cash a courier should have handed over but did not
//
// Key business rules:
//   - Cash transactions and shortfalls must carry strictly positive amounts
//   - Only confirmed remittances count toward a courier's handed-over cash
//   - Shortfalls stay pending until settled, independently of report periods
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
