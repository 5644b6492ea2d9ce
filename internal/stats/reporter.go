package stats

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/trip"
)

// Reporter prints one group of statistics for a dataset.
type Reporter interface {
	// Name identifies the reporter in logs.
	Name() string
	// Report computes the statistics of ds and writes them to w.
	Report(ctx context.Context, w io.Writer, ds *trip.Dataset)
}

// Separator closes every report.
var Separator = strings.Repeat("-", 40)

// EmptyNotice replaces the figures when no trip matched the filters.
const EmptyNotice = "No trips match the selected filters."

// NotAvailable is the notice printed for a column the city does not provide.
func NotAvailable(column string) string {
	return fmt.Sprintf("'%s' data not available for this city.", column)
}

// timed runs fn, then writes the elapsed time and the separator.
func timed(ctx context.Context, w io.Writer, name string, fn func()) {
	start := time.Now()
	fn()
	elapsed := time.Since(start)

	ctxlog.FromContext(ctx).Debug("Report finished.", "reporter", name, "elapsed", elapsed)
	fmt.Fprintf(w, "\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	fmt.Fprintln(w, Separator)
}

// formatNumber prints integral values without a fractional part.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
