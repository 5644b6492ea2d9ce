package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/bikeshare/internal/trip"
)

// RouteSeparator joins start and end station into a route name.
const RouteSeparator = " to "

// StationStats are the most popular stations and route.
type StationStats struct {
	Trips        int
	StartStation string
	EndStation   string
	Route        string
}

// StationReporter reports the most common start station, end station and
// start-to-end combination. Rows with an empty station cell do not count
// towards the statistic that needs it.
type StationReporter struct{}

// Name implements Reporter.
func (StationReporter) Name() string { return "station" }

// Compute derives StationStats from ds.
func (StationReporter) Compute(ds *trip.Dataset) StationStats {
	starts := make([]string, 0, ds.Len())
	ends := make([]string, 0, ds.Len())
	routes := make([]string, 0, ds.Len())
	for _, r := range ds.Records {
		if r.StartStation != "" {
			starts = append(starts, r.StartStation)
		}
		if r.EndStation != "" {
			ends = append(ends, r.EndStation)
		}
		if r.StartStation != "" && r.EndStation != "" {
			routes = append(routes, r.StartStation+RouteSeparator+r.EndStation)
		}
	}

	st := StationStats{Trips: ds.Len()}
	st.StartStation, _ = Mode(starts)
	st.EndStation, _ = Mode(ends)
	st.Route, _ = Mode(routes)
	return st
}

// Render writes st as text.
func (StationReporter) Render(w io.Writer, st StationStats) {
	if st.Trips == 0 {
		fmt.Fprintln(w, EmptyNotice)
		return
	}
	fmt.Fprintln(w, "Most Commonly Used Start Station:", orNone(st.StartStation))
	fmt.Fprintln(w, "Most Commonly Used End Station:", orNone(st.EndStation))
	fmt.Fprintln(w, "Most Frequent Combination of Start Station and End Station Trip:", orNone(st.Route))
}

// Report implements Reporter.
func (r StationReporter) Report(ctx context.Context, w io.Writer, ds *trip.Dataset) {
	fmt.Fprintln(w, "\nCalculating The Most Popular Stations and Trip...")
	fmt.Fprintln(w)
	timed(ctx, w, r.Name(), func() {
		r.Render(w, r.Compute(ds))
	})
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
