// Package kernel provides core domain primitives and utilities for the delivery
// platform. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a decimal-backed value object for monetary amounts
//   - ReportDate: a value object fixing the accounting day-boundary semantics
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
