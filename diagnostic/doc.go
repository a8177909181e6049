// Package diagnostic derives power-consumption and life-support ratings from a bit matrix of
// diagnostic readings.
//
// # Power consumption
//
// For every column the majority bit is 1 iff more than rows/2 readings (integer division) have a
// 1 there; an exact half split therefore resolves to 0. The majority bits form gamma, their
// complement forms epsilon, and both decode big-endian:
//
//	p := diagnostic.PowerConsumption(m) // p.Gamma, p.Epsilon, p.Product()
//
// # Life support
//
// The oxygen-generator and CO2-scrubber ratings come from the same column-by-column filter,
// parameterized by a Rating:
//
//	column c:  ones   = readings with bit c set
//	           more   = ones >= rows/2 (rows even) | ones > rows/2 (rows odd)
//	           oxygen keeps bit 1 if more, else 0
//	           CO2    keeps bit 0 if more, else 1
//
// The asymmetric even/odd threshold is a fixed contract; on an even split it favors the 1-rows
// for oxygen and the 0-rows for CO2.
//
// Filtering stops as soon as one reading remains. If every column is consumed and more than one
// reading is left, the filter returns a *ConvergenceError instead of guessing.
//
// A column on which every remaining reading agrees cannot separate them. When the selection rule
// would discard all of them, the working set is kept unchanged and the step is marked Unanimous.
//
// # Tracing
//
// Trace runs the same filter and records every step, including the surviving original row ids
// as a roaring bitmap.
package diagnostic
