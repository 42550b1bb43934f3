// Package kernel provides the shared value objects of the order desk domain.
//
// The package includes:
//   - UUID: identifier of clients, products, orders and draft orders
//   - Money: a non-negative decimal amount used for prices and totals
//   - Date and Clock: calendar days as seen by the sequence and draft generators,
//     with an injectable time source so "today" can be simulated
//
// Value objects are immutable and validated at construction; zero values fail Validate.
package kernel
