// Package draft provides DraftOrder, the index of pending orders seeded
// automatically for one calendar day.
//
// A draft is a projection of its paired pending order: one client, one product,
// quantity 1 at the product price of the generation day. A batch of drafts is
// current only while every draft in it was generated today.
package draft
