// Package testutil provides testing utilities for reclist.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source, random record generators and
// helpers for checking the relations between derived id sequences.
//
// # Random Records
//
//	rng := testutil.NewRNG(seed)
//	recs := rng.Records(500, testutil.RecordOptions{DisabledRate: 0.1})
//
// # Sequence Checks
//
//	testutil.IsSubsequence(l.FilteredIDs(), l.OrderedIDs())
package testutil
