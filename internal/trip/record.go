package trip

import "time"

// Record is a single trip. Optional fields are only meaningful when their
// Has* flag is set; a column can exist in the source and still be empty for
// a given row.
type Record struct {
	// Index is the 0-based position of the row in its source file.
	Index int

	StartTime    time.Time
	EndTime      time.Time
	HasEndTime   bool
	StartStation string
	EndStation   string

	TripDuration    float64
	HasTripDuration bool
	UserType        string
	HasUserType     bool
	Gender          string
	HasGender       bool
	BirthYear       float64
	HasBirthYear    bool

	// Derived from StartTime on load.
	Month     int
	DayOfWeek string
	Hour      int

	// Raw holds the source cells in header order.
	Raw []string
}

// Derive fills the time-based columns from StartTime.
func (r *Record) Derive() {
	r.Month = int(r.StartTime.Month())
	r.DayOfWeek = r.StartTime.Weekday().String()
	r.Hour = r.StartTime.Hour()
}

// Dataset is an ordered sequence of trips for one city.
type Dataset struct {
	City    string
	Header  []string
	Columns Columns
	Records []Record
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Has reports whether the optional column is available in this dataset.
func (d *Dataset) Has(column string) bool {
	return d != nil && d.Columns.Has(column)
}

// WithRecords returns a new Dataset sharing this one's metadata but holding
// the given records. The receiver is not modified.
func (d *Dataset) WithRecords(records []Record) *Dataset {
	return &Dataset{
		City:    d.City,
		Header:  d.Header,
		Columns: d.Columns,
		Records: records,
	}
}
