// Package pager shows the raw rows of a dataset a page at a time.
package pager

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/trip"
)

// PageSize is the number of rows shown per page.
const PageSize = 5

// Prompt texts.
const (
	Question   = "\nWould you like to see 5 more rows of raw data? Enter yes or no.\n"
	Retry      = "Incorrect response. Please type 'yes' or 'no'."
	NoMoreData = "No more data to display."
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question, retry string) (bool, error)
}

// Pager walks a dataset from the first row. A Pager is single-use.
type Pager struct {
	ds     *trip.Dataset
	cursor int
}

// New returns a Pager positioned at the first row of ds.
func New(ds *trip.Dataset) *Pager {
	return &Pager{ds: ds}
}

// Cursor is the index of the next row to show.
func (p *Pager) Cursor() int {
	return p.cursor
}

// Exhausted reports whether every row has been shown.
func (p *Pager) Exhausted() bool {
	return p.cursor >= p.ds.Len()
}

// Next writes the rows [cursor, cursor+PageSize) and advances the cursor.
// It returns false, after writing NoMoreData, once the end is reached.
func (p *Pager) Next(w io.Writer) bool {
	end := min(p.cursor+PageSize, p.ds.Len())
	if p.cursor < end {
		writeTable(w, p.ds, p.ds.Records[p.cursor:end])
	}
	p.cursor += PageSize

	if p.Exhausted() {
		fmt.Fprintln(w, NoMoreData)
		return false
	}
	return true
}

// Run pages through the dataset for as long as the user answers yes.
func (p *Pager) Run(ctx context.Context, c Confirmer, w io.Writer) error {
	logger := ctxlog.FromContext(ctx)
	for {
		more, err := c.Confirm(ctx, Question, Retry)
		if err != nil {
			return err
		}
		if !more {
			logger.Debug("Pager stopped by user.", "cursor", p.cursor)
			return nil
		}
		if !p.Next(w) {
			logger.Debug("Pager reached end of data.", "rows", p.ds.Len())
			return nil
		}
	}
}

// writeTable prints rows aligned under the source header, followed by the
// derived month and day_of_week columns.
func writeTable(w io.Writer, ds *trip.Dataset, rows []trip.Record) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	cols := make([]string, 0, len(ds.Header)+3)
	cols = append(cols, "")
	for i, name := range ds.Header {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		cols = append(cols, name)
	}
	cols = append(cols, "month", "day_of_week")
	fmt.Fprintln(tw, strings.Join(cols, "\t"))

	for _, r := range rows {
		cells := make([]string, 0, len(cols))
		cells = append(cells, strconv.Itoa(r.Index))
		cells = append(cells, r.Raw...)
		cells = append(cells, strconv.Itoa(r.Month), r.DayOfWeek)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}
