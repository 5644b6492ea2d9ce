// Package dataset loads a city's trip records from its delimited source file
// into a trip.Dataset, deriving the month, weekday and hour of every trip.
package dataset
