// SPDX-License-Identifier: MIT

// Package builder generates synthetic stop networks for demos, tests and
// benchmarks.
//
// Every topology is a Constructor closure applied by BuildGraph to a fresh
// core.Graph:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//	    builder.RandomSparse(30, 0.1),
//	)
//
// Determinism: vertices are added in ascending id order starting at the
// configured first id (default 1), edges in a fixed documented order, and the
// RNG is only consulted in that order. Equal options give equal graphs.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the method name.
package builder
