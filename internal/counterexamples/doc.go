// Package counterexamples holds deliberately flawed designs, one file per
// principle. Each type here is kept only to contrast with the corrected
// design in internal/core; nothing in the application wires them into a
// real operation.
//
// The code runs and prints the same simulated output as the corrected
// designs, so the example runners can show both variants side by side.
package counterexamples
