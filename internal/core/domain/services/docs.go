// Package services provides domain services that coordinate several aggregates
// of the order desk.
//
// The package includes:
//   - PaymentSettler: applies the paid transition to an order together with the
//     client and product statistics it feeds
//   - DraftPlanner: decides whether today's draft batch must be (re)generated and
//     builds the pending order and draft row for every client/product pair
package services
