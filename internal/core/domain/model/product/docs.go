// Package product provides the Product entity of the catalog.
//
// Key business rules:
//   - names are trimmed and must not be blank
//   - prices are non-negative; an absent price is zero
//   - OrderCount grows only through RecordSale, by the quantity of a paid order line
package product
