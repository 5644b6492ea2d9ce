// Package stats computes and prints the descriptive statistics of a filtered
// trip dataset.
//
// Every reporter is split in two: a pure Compute step that returns the
// figures as a typed struct, and a Render step that writes them as text.
// Modes and value counts break ties by first appearance in scan order, so
// the same dataset always yields the same report.
package stats
