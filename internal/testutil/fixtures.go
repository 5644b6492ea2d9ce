package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/bikeshare/internal/config"
	"github.com/specialistvlad/bikeshare/internal/trip"
	"github.com/stretchr/testify/require"
)

// ChicagoHeader mirrors the column layout of the Chicago source, including
// the unnamed leading index column.
var ChicagoHeader = []string{
	"", trip.ColStartTime, trip.ColEndTime, trip.ColTripDuration,
	trip.ColStartStation, trip.ColEndStation, trip.ColUserType,
	trip.ColGender, trip.ColBirthYear,
}

// WashingtonHeader mirrors the Washington source, which has no demographics.
var WashingtonHeader = []string{
	"", trip.ColStartTime, trip.ColEndTime, trip.ColTripDuration,
	trip.ColStartStation, trip.ColEndStation, trip.ColUserType,
}

// CSV renders a header and rows as delimited text.
func CSV(t *testing.T, header []string, rows [][]string) string {
	t.Helper()
	sb := &strings.Builder{}
	w := csv.NewWriter(sb)
	require.NoError(t, w.Write(header))
	require.NoError(t, w.WriteAll(rows))
	return sb.String()
}

// WriteCSV writes a source file into dir and returns its path.
func WriteCSV(t *testing.T, dir, name string, header []string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(CSV(t, header, rows)), 0o600))
	return path
}

// CityTable builds a city table whose sources live in dir.
func CityTable(dir string, files map[string]string) *config.Model {
	m := &config.Model{}
	for _, name := range sortedKeys(files) {
		m.Cities = append(m.Cities, &config.City{
			Name:       name,
			File:       filepath.Join(dir, files[name]),
			TimeLayout: config.DefaultTimeLayout,
		})
	}
	return m
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Trip builds a record starting at start (config.DefaultTimeLayout) with the
// derived columns filled in.
func Trip(t *testing.T, start, from, to string) trip.Record {
	t.Helper()
	ts, err := time.Parse(config.DefaultTimeLayout, start)
	require.NoError(t, err)
	r := trip.Record{StartTime: ts, StartStation: from, EndStation: to}
	r.Derive()
	return r
}

// Dataset wraps records into a dataset with the given optional columns,
// numbering records in order.
func Dataset(records []trip.Record, optional ...string) *trip.Dataset {
	for i := range records {
		records[i].Index = i
	}
	return &trip.Dataset{
		City:    "test",
		Header:  []string{trip.ColStartTime, trip.ColStartStation, trip.ColEndStation},
		Columns: trip.NewColumns(optional...),
		Records: records,
	}
}
