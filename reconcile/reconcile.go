package reconcile

import (
	"fmt"

	"github.com/relateby/pattern-go/pattern"
)

// Reconcile resolves two occurrences of a pattern under the same
// identity (existing, already present, and incoming, newly seen) into
// a single pattern, per policy.
//
// LastWriteWins and FirstWriteWins never fail. Merge never fails.
// Strict fails with an *Error (code ErrConflict) when existing and
// incoming are not equal under the policy's equality function.
func Reconcile[V any](policy Policy[V], existing, incoming pattern.Pattern[V]) (pattern.Pattern[V], error) {
	switch policy.kind {
	case lastWriteWins:
		return incoming, nil
	case firstWriteWins:
		return existing, nil
	case strict:
		if existing.Matches(incoming, policy.equal) {
			return existing, nil
		}
		var zero pattern.Pattern[V]
		return zero, &Error{
			Code:    ErrConflict,
			Message: "reconcile: strict policy found differing occurrences under the same identity",
		}
	case merge:
		newValue := policy.mergeValue(existing.Value(), incoming.Value())
		newElements := mergeElements(policy, existing.Elements(), incoming.Elements())
		return pattern.New(newValue, newElements...), nil
	default:
		var zero pattern.Pattern[V]
		return zero, &Error{Code: ErrConflict, Message: fmt.Sprintf("reconcile: unknown policy kind %d", policy.kind)}
	}
}

func mergeElements[V any](policy Policy[V], existing, incoming []pattern.Pattern[V]) []pattern.Pattern[V] {
	switch policy.elementStrategy {
	case ReplaceElements:
		return incoming
	case AppendElements:
		out := make([]pattern.Pattern[V], 0, len(existing)+len(incoming))
		out = append(out, existing...)
		out = append(out, incoming...)
		return out
	case UnionElements:
		seen := make(map[string]struct{}, len(existing)+len(incoming))
		out := make([]pattern.Pattern[V], 0, len(existing)+len(incoming))
		for _, list := range [][]pattern.Pattern[V]{existing, incoming} {
			for _, elem := range list {
				id := policy.identity(elem.Value())
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				out = append(out, elem)
			}
		}
		return out
	default:
		return incoming
	}
}
