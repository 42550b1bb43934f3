// Package sequence provides the per-prefix order number counter.
//
// Order numbers have the form PREFIX-YYYYMMDD-NNNNNN: the counter restarts at 1
// on the first number of each calendar day and the running number is always
// zero-padded to NumberWidth digits. Within a day numbers are unique and
// strictly increasing as long as every increment is persisted atomically.
package sequence
