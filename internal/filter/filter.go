// Package filter narrows a trip dataset by month and day of week.
package filter

import (
	"context"
	"slices"
	"strings"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/trip"
)

// All disables a selector.
const All = "all"

// Months are the selectable months. Only January through June are offered;
// a month's 1-based position is its calendar number.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Days are the selectable days of the week.
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// MonthChoices is the closed set accepted by the month prompt.
func MonthChoices() []string {
	return append(slices.Clone(Months), All)
}

// DayChoices is the closed set accepted by the day prompt.
func DayChoices() []string {
	return append(slices.Clone(Days), All)
}

// Criteria is a validated set of selectors.
type Criteria struct {
	City  string
	Month string
	Day   string
}

// MonthNumber returns the calendar number of a month selector, or 0 for
// "all" and unknown names.
func MonthNumber(month string) int {
	i := slices.Index(Months, strings.ToLower(month))
	return i + 1
}

// Apply returns a new dataset holding the records of ds that match c, in
// their original order. ds is not modified.
//
// Selectors are expected to come from MonthChoices and DayChoices. A month
// or day outside those sets matches no record.
func Apply(ctx context.Context, ds *trip.Dataset, c Criteria) *trip.Dataset {
	logger := ctxlog.FromContext(ctx)

	filterMonth := !strings.EqualFold(c.Month, All)
	month := MonthNumber(c.Month)
	filterDay := !strings.EqualFold(c.Day, All)

	kept := make([]trip.Record, 0, len(ds.Records))
	for _, r := range ds.Records {
		if filterMonth && r.Month != month {
			continue
		}
		if filterDay && !strings.EqualFold(r.DayOfWeek, c.Day) {
			continue
		}
		kept = append(kept, r)
	}

	logger.Debug("Dataset filtered.", "month", c.Month, "day", c.Day, "before", ds.Len(), "after", len(kept))
	return ds.WithRecords(kept)
}
