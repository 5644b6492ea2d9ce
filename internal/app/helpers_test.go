package app

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/specialistvlad/bikeshare/internal/config"
	"github.com/specialistvlad/bikeshare/internal/testutil"
	"github.com/stretchr/testify/require"
)

// staticLoader hands out a prepared city table.
type staticLoader struct {
	model *config.Model
	err   error
}

func (l staticLoader) Load(context.Context, ...string) (*config.Model, error) {
	return l.model, l.err
}

// chicagoRows: the full set's most common hour is 9, while May Mondays
// (rows 0, 1, 2 and 6) peak at 17.
var chicagoRows = [][]string{
	{"10", "2017-05-01 17:10:00", "2017-05-01 17:11:40", "100", "Lake Shore Dr", "Canal St", "Subscriber", "Male", "1990.0"},
	{"11", "2017-05-08 17:20:00", "2017-05-08 17:23:20", "200", "Clark St", "Canal St", "Subscriber", "Female", "1985.0"},
	{"12", "2017-05-08 09:00:00", "2017-05-08 09:05:00", "300", "Clark St", "Canal St", "Customer", "", ""},
	{"13", "2017-05-02 09:00:00", "2017-05-02 09:10:00", "600", "Clark St", "Wells St", "Subscriber", "Male", "1990.0"},
	{"14", "2017-06-05 09:00:00", "2017-06-05 09:10:00", "600", "Clark St", "Wells St", "Subscriber", "Male", "1970.0"},
	{"15", "2017-01-03 09:00:00", "2017-01-03 09:10:00", "600", "Clark St", "Wells St", "Customer", "Female", "2001.0"},
	{"16", "2017-05-15 17:45:00", "2017-05-15 17:51:40", "400", "Clark St", "Canal St", "Subscriber", "Male", "1985.0"},
}

var washingtonRows = [][]string{
	{"0", "2017-06-21 08:36:34", "2017-06-21 08:44:43", "489", "14th & Belmont St NW", "15th & K St NW", "Subscriber"},
	{"1", "2017-03-11 10:40:00", "2017-03-11 10:46:02", "362", "Crystal City Metro", "15th & K St NW", "Customer"},
}

// harness is a fully wired App fed from a scripted input.
type harness struct {
	app  *App
	out  *testutil.SafeBuffer
	logs *testutil.SafeBuffer
}

// newHarness writes the fixture sources into a temp dir and builds an App
// whose stdin replays answers, one per line.
func newHarness(t *testing.T, answers ...string) *harness {
	t.Helper()

	dir := t.TempDir()
	testutil.WriteCSV(t, dir, "chicago.csv", testutil.ChicagoHeader, chicagoRows)
	testutil.WriteCSV(t, dir, "washington.csv", testutil.WashingtonHeader, washingtonRows)
	cities := testutil.CityTable(dir, map[string]string{
		"chicago":       "chicago.csv",
		"new york city": "new_york_city.csv", // intentionally missing
		"washington":    "washington.csv",
	})

	h := &harness{out: &testutil.SafeBuffer{}, logs: &testutil.SafeBuffer{}}
	cfg, err := NewConfig(Config{DataDir: dir, LogLevel: "debug"})
	require.NoError(t, err)

	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	h.app, err = NewApp(in, h.out, h.logs, cfg, staticLoader{model: cities})
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("BIKESHARE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), h.logs.String())
		}
	})
	return h
}

func (h *harness) run(t *testing.T) string {
	t.Helper()
	require.NoError(t, h.app.Run(context.Background()))
	return h.out.String()
}
