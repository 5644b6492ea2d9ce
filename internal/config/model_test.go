package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *Model {
	return &Model{Cities: []*City{
		{Name: "chicago", File: "chicago.csv", TimeLayout: DefaultTimeLayout},
		{Name: "new york city", File: "new_york_city.csv", TimeLayout: DefaultTimeLayout},
	}}
}

func TestModel_Lookup(t *testing.T) {
	t.Parallel()
	m := testModel()

	c, ok := m.Lookup("  New York City ")
	require.True(t, ok)
	assert.Equal(t, "new_york_city.csv", c.File)

	_, ok = m.Lookup("boston")
	assert.False(t, ok)
}

func TestModel_CityNamesKeepsOrder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"chicago", "new york city"}, testModel().CityNames())
}

func TestModel_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		model     *Model
		expectErr string
	}{
		{name: "valid", model: testModel()},
		{name: "nil", model: nil, expectErr: "city table is empty"},
		{name: "empty", model: &Model{}, expectErr: "city table is empty"},
		{
			name: "duplicate",
			model: &Model{Cities: []*City{
				{Name: "chicago", File: "a.csv", TimeLayout: DefaultTimeLayout},
				{Name: "chicago", File: "b.csv", TimeLayout: DefaultTimeLayout},
			}},
			expectErr: `city "chicago" is defined more than once`,
		},
		{
			name:      "missing file",
			model:     &Model{Cities: []*City{{Name: "chicago", TimeLayout: DefaultTimeLayout}}},
			expectErr: `city "chicago" has no source file`,
		},
		{
			name:      "missing layout",
			model:     &Model{Cities: []*City{{Name: "chicago", File: "a.csv"}}},
			expectErr: `city "chicago" has no time layout`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.model.Validate()
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.expectErr)
		})
	}
}
