// Package order provides the Order aggregate root and its status state machine.
//
// The package includes:
//   - Order: identity, human-readable number, client reference, line snapshot and payment data
//   - Line: one ordered product, frozen at creation time
//   - Status: the lifecycle state machine
//
// Key business rules:
//   - orders are created in an entry state, pending or confirmed
//   - status moves forward along pending -> confirmed -> paid -> delivered
//   - pending and confirmed orders can be cancelled; paid, delivered and cancelled cannot
//   - on paid, payment method and amount are written only if not set yet
//   - on delivered, supplied payment data overwrites what is stored
//   - no transition touches the lines
package order
