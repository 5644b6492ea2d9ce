package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/specialistvlad/bikeshare/internal/config"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/trip"
)

// ErrUnknownCity is returned for a city that is not in the city table.
var ErrUnknownCity = errors.New("unknown city")

// Loader reads trip datasets for the cities of a read-only city table.
type Loader struct {
	cities *config.Model
}

// NewLoader returns a Loader bound to the given city table.
func NewLoader(cities *config.Model) *Loader {
	return &Loader{cities: cities}
}

// Load reads every record of the named city. Any failure is a *LoadError.
func (l *Loader) Load(ctx context.Context, cityName string) (*trip.Dataset, error) {
	logger := ctxlog.FromContext(ctx).With("city", cityName)

	city, ok := l.cities.Lookup(cityName)
	if !ok {
		return nil, &LoadError{City: cityName, Err: ErrUnknownCity}
	}

	logger.Debug("Opening trip source.", "path", city.File)
	f, err := os.Open(city.File)
	if err != nil {
		return nil, &LoadError{City: city.Name, Path: city.File, Err: err}
	}
	defer f.Close()

	ds, err := Parse(f, city)
	if err != nil {
		return nil, &LoadError{City: city.Name, Path: city.File, Err: err}
	}

	logger.Debug("Trip source loaded.", "rows", ds.Len(), "optional_columns", len(ds.Columns))
	return ds, nil
}

// Parse decodes a delimited trip source. The first row is the header.
func Parse(r io.Reader, city *config.City) (*trip.Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("source is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header = append([]string(nil), header...)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	cols, err := newColumnIndex(header)
	if err != nil {
		return nil, err
	}

	ds := &trip.Dataset{
		City:    city.Name,
		Header:  header,
		Columns: cols.available(),
	}

	for row := 0; ; row++ {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}
		rec, err := cols.decode(row, cells, city.TimeLayout)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

// columnIndex maps known column names to their position in the header.
type columnIndex map[string]int

func newColumnIndex(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, name := range trip.RequiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return idx, nil
}

func (c columnIndex) available() trip.Columns {
	var present []string
	for _, name := range trip.OptionalColumns {
		if _, ok := c[name]; ok {
			present = append(present, name)
		}
	}
	return trip.NewColumns(present...)
}

// missingTokens are the cell values read as "no value", the same set
// pandas' read_csv treats as NA by default.
var missingTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

func isMissing(v string) bool {
	_, ok := missingTokens[v]
	return ok
}

// cell returns the value of column name as written, and false when the
// column is absent or the cell holds a missing-value token. Surrounding
// whitespace is significant for text cells.
func (c columnIndex) cell(cells []string, name string) (string, bool) {
	i, ok := c[name]
	if !ok || i >= len(cells) || isMissing(cells[i]) {
		return "", false
	}
	return cells[i], true
}

// trimmed is cell for timestamp and numeric columns, where surrounding
// whitespace is not part of the value.
func (c columnIndex) trimmed(cells []string, name string) (string, bool) {
	v, ok := c.cell(cells, name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, !isMissing(v)
}

// number parses a numeric cell. Only finite values are accepted.
func (c columnIndex) number(cells []string, name string) (float64, bool, error) {
	v, ok := c.trimmed(cells, name)
	if !ok {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %q value %q: %w", name, v, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("invalid %q value %q: not a finite number", name, v)
	}
	return f, true, nil
}

func (c columnIndex) decode(row int, cells []string, layout string) (trip.Record, error) {
	rec := trip.Record{
		Index: row,
		Raw:   append([]string(nil), cells...),
	}

	start, ok := c.trimmed(cells, trip.ColStartTime)
	if !ok {
		return rec, fmt.Errorf("empty %q", trip.ColStartTime)
	}
	t, err := time.Parse(layout, start)
	if err != nil {
		return rec, fmt.Errorf("invalid %q value %q: %w", trip.ColStartTime, start, err)
	}
	rec.StartTime = t
	rec.Derive()

	rec.StartStation, _ = c.cell(cells, trip.ColStartStation)
	rec.EndStation, _ = c.cell(cells, trip.ColEndStation)

	if v, ok := c.trimmed(cells, trip.ColEndTime); ok {
		end, err := time.Parse(layout, v)
		if err != nil {
			return rec, fmt.Errorf("invalid %q value %q: %w", trip.ColEndTime, v, err)
		}
		rec.EndTime, rec.HasEndTime = end, true
	}
	if rec.TripDuration, rec.HasTripDuration, err = c.number(cells, trip.ColTripDuration); err != nil {
		return rec, err
	}
	if rec.BirthYear, rec.HasBirthYear, err = c.number(cells, trip.ColBirthYear); err != nil {
		return rec, err
	}
	rec.UserType, rec.HasUserType = c.cell(cells, trip.ColUserType)
	rec.Gender, rec.HasGender = c.cell(cells, trip.ColGender)

	return rec, nil
}
