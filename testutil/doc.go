// Package testutil provides testing utilities for subdiag.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG and generators for diagnostic readings.
//
// # Random Readings
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.Readings(100, 12)          // may contain duplicates
//	uniq := rng.DistinctReadings(100, 12)  // every reading unique
//
// # Known Report
//
//	testutil.ExampleReadings  // the 12×5 reference report (gamma 22, epsilon 9, oxygen 23, CO2 10)
package testutil
