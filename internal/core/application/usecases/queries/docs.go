// Package queries contains read operations for retrieving system state.
// Handlers read the tables directly with SQL and return flat read models;
// they never go through the aggregates or the unit of work.
package queries
