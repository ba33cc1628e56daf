// Package shop provides the Shop aggregate, the merchant whose orders the
// platform delivers and collects cash for.
//
// Key business rules:
//   - Shops must have a valid unique identifier and a name
//   - A shop may opt into packaging billing; the packaging price then applies
//     to every processed order of that shop
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shop
