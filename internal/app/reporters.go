package app

import "github.com/specialistvlad/bikeshare/internal/stats"

// coreReporters is the report sequence run for every session, in order.
var coreReporters = []stats.Reporter{
	stats.TimeReporter{},
	stats.StationReporter{},
	stats.UserReporter{},
}
