// Package client provides the Client entity: a customer the operator takes orders for.
//
// Clients carry two aggregate statistics, TotalOrders and TotalSpent. They are
// maintained incrementally by RecordPayment when one of the client's orders is
// paid and are never written by catalog edits.
package client
