package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/bikeshare/internal/trip"
)

// UserStats are the demographic breakdowns of the riders.
type UserStats struct {
	Trips int

	HasUserType bool
	UserTypes   []Count[string]

	HasGender bool
	Genders   []Count[string]

	HasBirthYear bool
	// BirthYears is nil when the column exists but every cell is empty.
	BirthYears *BirthYearStats
}

// BirthYearStats holds whole-number birth years.
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserReporter reports user type and gender counts and birth year extremes.
type UserReporter struct{}

// Name implements Reporter.
func (UserReporter) Name() string { return "user" }

// Compute derives UserStats from ds.
func (UserReporter) Compute(ds *trip.Dataset) UserStats {
	st := UserStats{
		Trips:        ds.Len(),
		HasUserType:  ds.Has(trip.ColUserType),
		HasGender:    ds.Has(trip.ColGender),
		HasBirthYear: ds.Has(trip.ColBirthYear),
	}

	var userTypes, genders []string
	var years []float64
	for _, r := range ds.Records {
		if st.HasUserType && r.HasUserType {
			userTypes = append(userTypes, r.UserType)
		}
		if st.HasGender && r.HasGender {
			genders = append(genders, r.Gender)
		}
		if st.HasBirthYear && r.HasBirthYear {
			years = append(years, r.BirthYear)
		}
	}
	st.UserTypes = ValueCounts(userTypes)
	st.Genders = ValueCounts(genders)

	if len(years) > 0 {
		minYear, maxYear := years[0], years[0]
		for _, y := range years[1:] {
			minYear = min(minYear, y)
			maxYear = max(maxYear, y)
		}
		common, _ := Mode(years)
		st.BirthYears = &BirthYearStats{
			Earliest:   int(minYear),
			MostRecent: int(maxYear),
			MostCommon: int(common),
		}
	}
	return st
}

// Render writes st as text.
func (UserReporter) Render(w io.Writer, st UserStats) {
	if st.Trips == 0 {
		fmt.Fprintln(w, EmptyNotice)
		return
	}
	renderCounts(w, st.HasUserType, trip.ColUserType, "Counts of User Types", st.UserTypes)
	renderCounts(w, st.HasGender, trip.ColGender, "Counts of Gender", st.Genders)

	switch {
	case !st.HasBirthYear:
		fmt.Fprintln(w, "\n"+NotAvailable(trip.ColBirthYear))
	case st.BirthYears == nil:
		fmt.Fprintln(w, "\nNo 'Birth Year' values recorded for the selected trips.")
	default:
		fmt.Fprintln(w, "\nEarliest Year of Birth:", st.BirthYears.Earliest)
		fmt.Fprintln(w, "Most Recent Year of Birth:", st.BirthYears.MostRecent)
		fmt.Fprintln(w, "Most Common Year of Birth:", st.BirthYears.MostCommon)
	}
}

// Report implements Reporter.
func (r UserReporter) Report(ctx context.Context, w io.Writer, ds *trip.Dataset) {
	fmt.Fprintln(w, "\nCalculating User Stats...")
	fmt.Fprintln(w)
	timed(ctx, w, r.Name(), func() {
		r.Render(w, r.Compute(ds))
	})
}

func renderCounts(w io.Writer, present bool, column, title string, counts []Count[string]) {
	if !present {
		fmt.Fprintln(w, "\n"+NotAvailable(column))
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, c := range counts {
		fmt.Fprintf(w, "  %s: %d\n", c.Value, c.Count)
	}
}
