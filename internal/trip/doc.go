// Package trip defines the in-memory model of a city's bike-share trips: one
// Record per source row, and a Dataset that carries the records together with
// the set of optional columns its source actually provided.
package trip
