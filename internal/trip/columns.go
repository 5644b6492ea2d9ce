package trip

// Column names as they appear in the header of a city's source file.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// RequiredColumns must be present in every source.
var RequiredColumns = []string{ColStartTime, ColStartStation, ColEndStation}

// OptionalColumns may be missing from a city's source.
var OptionalColumns = []string{ColEndTime, ColTripDuration, ColUserType, ColGender, ColBirthYear}

// Columns is the capability descriptor of a Dataset: the optional columns
// that were present in the source header.
type Columns map[string]struct{}

// NewColumns builds a descriptor from the given column names.
func NewColumns(names ...string) Columns {
	c := make(Columns, len(names))
	for _, n := range names {
		c[n] = struct{}{}
	}
	return c
}

// Has reports whether the named column was present in the source.
func (c Columns) Has(name string) bool {
	_, ok := c[name]
	return ok
}
