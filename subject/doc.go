// Package subject implements the self-descriptive record type carried as
// the value payload of a Pattern throughout this module: an identity, a
// label set, and a property map.
//
// Identity text, labels, and property keys are NFC-normalized at
// construction so that two subjects built from differently-composed
// Unicode input compare equal.
package subject
