// Package pattern implements Pattern[V], a recursive immutable tree: a
// value of type V plus an ordered sequence of child patterns.
//
// Pattern carries a functor (Map), a left fold, a paramorphism (Para), a
// comonad (Extract/Extend), and an anamorphism (Unfold). Traversals that
// must handle deeply nested patterns (Map, Para, Extend, Unfold) use an
// explicit work stack rather than host recursion, so pattern depth is
// bounded only by available memory, not call-stack size.
package pattern
