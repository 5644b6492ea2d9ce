package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		in        Config
		expected  *Config
		expectErr string
	}{
		{
			name:     "defaults",
			in:       Config{},
			expected: &Config{DataDir: ".", LogFormat: "text", LogLevel: "warn"},
		},
		{
			name:     "explicit values",
			in:       Config{DataDir: "/data", ConfigPath: "cities.hcl", LogFormat: "json", LogLevel: "debug"},
			expected: &Config{DataDir: "/data", ConfigPath: "cities.hcl", LogFormat: "json", LogLevel: "debug"},
		},
		{name: "bad format", in: Config{LogFormat: "xml"}, expectErr: "invalid log-format"},
		{name: "bad level", in: Config{LogLevel: "trace"}, expectErr: "invalid log-level"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewConfig(tc.in)
			if tc.expectErr != "" {
				require.ErrorContains(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
