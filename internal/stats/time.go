package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/bikeshare/internal/trip"
)

// TimeStats are the most frequent times of travel and the trip duration totals.
type TimeStats struct {
	Trips int

	// Month is the calendar number, not a name.
	Month int
	Day   string
	Hour  int

	HasDuration bool
	// DurationTrips counts the rows that carried a duration.
	DurationTrips int
	TotalDuration float64
	MeanDuration  float64
}

// TimeReporter reports the most common month, weekday and start hour, plus
// total and mean trip duration when the city provides it.
type TimeReporter struct{}

// Name implements Reporter.
func (TimeReporter) Name() string { return "time" }

// Compute derives TimeStats from ds.
func (TimeReporter) Compute(ds *trip.Dataset) TimeStats {
	st := TimeStats{Trips: ds.Len(), HasDuration: ds.Has(trip.ColTripDuration)}

	months := make([]int, 0, ds.Len())
	days := make([]string, 0, ds.Len())
	hours := make([]int, 0, ds.Len())
	for _, r := range ds.Records {
		months = append(months, r.Month)
		days = append(days, r.DayOfWeek)
		hours = append(hours, r.Hour)
		if st.HasDuration && r.HasTripDuration {
			st.DurationTrips++
			st.TotalDuration += r.TripDuration
		}
	}
	st.Month, _ = Mode(months)
	st.Day, _ = Mode(days)
	st.Hour, _ = Mode(hours)
	if st.DurationTrips > 0 {
		st.MeanDuration = st.TotalDuration / float64(st.DurationTrips)
	}
	return st
}

// Render writes st as text.
func (TimeReporter) Render(w io.Writer, st TimeStats) {
	if st.Trips == 0 {
		fmt.Fprintln(w, EmptyNotice)
		return
	}
	fmt.Fprintln(w, "Most Common Month:", st.Month)
	fmt.Fprintln(w, "Most Common Day of Week:", st.Day)
	fmt.Fprintln(w, "Most Common Start Hour:", st.Hour)

	if !st.HasDuration {
		fmt.Fprintln(w, "\n"+NotAvailable(trip.ColTripDuration))
		return
	}
	fmt.Fprintln(w, "\nTotal Travel Time:", formatNumber(st.TotalDuration))
	if st.DurationTrips == 0 {
		fmt.Fprintln(w, "Mean Travel Time: n/a")
		return
	}
	fmt.Fprintln(w, "Mean Travel Time:", formatNumber(st.MeanDuration))
}

// Report implements Reporter.
func (r TimeReporter) Report(ctx context.Context, w io.Writer, ds *trip.Dataset) {
	fmt.Fprintln(w, "\nCalculating The Most Frequent Times of Travel...")
	fmt.Fprintln(w)
	timed(ctx, w, r.Name(), func() {
		r.Render(w, r.Compute(ds))
	})
}
