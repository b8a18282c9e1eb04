package reconcile

// Code is a stable, matchable identifier for a reconciliation failure.
type Code struct {
	value string
}

func (c Code) String() string { return c.value }

func code(value string) Code { return Code{value: value} }

var (
	// ErrConflict indicates a Strict policy found two differing
	// occurrences under the same identity.
	ErrConflict = code("E_RECONCILE_CONFLICT")

	// ErrMissingIdentity names a UnionElements merge configured without
	// an identity function to deduplicate by. Merge panics in that case,
	// so Reconcile does not return an Error with this code.
	ErrMissingIdentity = code("E_RECONCILE_MISSING_IDENTITY")
)

// Error reports a reconciliation failure: the code and a human-readable
// message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }
