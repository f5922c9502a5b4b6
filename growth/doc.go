// Package growth implements the three interchangeable cluster-growth
// strategies of a Union–Find qLDPC decoder: grow every tracked cluster
// at once (standard), grow only the single smallest cluster
// (smallest-first), or grow one cluster chosen uniformly at random
// (random-first, via an injected RNG capability).
//
// Strategies are modeled as a tagged enumeration over ChooseRoots, not as
// subtype polymorphism — there is one function, keyed on a Strategy
// value, rather than one implementation per strategy type.
package growth
