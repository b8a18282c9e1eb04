// Package reconcile resolves two occurrences of a pattern sharing the
// same identity into a single pattern, under a caller-selected policy.
//
// Reconcile never panics for a caller-reachable conflict: a Strict
// policy failure is reported as an error, the same discipline the
// graph-layer packages use throughout this module.
package reconcile
