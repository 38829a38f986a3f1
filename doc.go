// Package stepwise is a small toolkit for classifying numeric reports as
// "safe": strictly increasing or decreasing, every step inside a bounded
// magnitude range, optionally forgiving one bad level.
//
// 🚀 What is in stepwise?
//
//	• Predicates: WithinRange, SameGradient over any signed integer type
//	• Scanners: Strict (zero faults) and Tolerant (one removable level)
//	• Batch counting: concurrent, order-independent Part 1 / Part 2 totals
//	• Input parsing: whitespace-separated levels, one report per line
//	• CLI: stepwise count / stepwise check
//
// ✨ Why the tolerant scanner?
//
//   - One forward pass, O(1) state: no re-scan per deletion candidate
//   - Explicit start → valid → faulted state machine with a one-shot budget
//   - Verified against the brute-force "delete each level" definition
//
// Under the hood the module is organized as:
//
//	monotone/        — predicates, Strict, Tolerant, Validate + options
//	batch/           — errgroup-driven Evaluate / Count, Report
//	input/           — text → [][]int with line-numbered errors
//	internal/config/ — YAML + environment configuration
//	cmd/stepwise/    — cobra CLI with logrus logging
//
// Quick example:
//
//	r := monotone.DefaultStepRange()
//	monotone.Strict([]int{7, 6, 4, 2, 1}, r)   // true
//	monotone.Tolerant([]int{8, 6, 4, 4, 1}, r) // true: drop one 4
//
//	go install github.com/katalvlaran/stepwise/cmd/stepwise@latest
package stepwise
