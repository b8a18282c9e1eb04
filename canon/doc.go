// Package canon implements the canonical JSON projection for
// Pattern[subject.Subject]: the interchange format used for FFI
// boundaries and test fixtures. Projection is one-way in the sense that
// Go's encoding/json does the actual encoding; canon's job is building
// the plain map/slice tree with the documented key names and lowercase
// type discriminators before handing it to json.Marshal.
package canon
