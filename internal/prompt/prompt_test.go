package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_RepromptsUntilValid(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	in := strings.NewReader("boston\n\n  New York City  \n")
	out := &bytes.Buffer{}
	p := New(in, out)

	// --- Act ---
	answer, err := p.Ask(context.Background(), "City? ", []string{"chicago", "new york city"}, "Incorrect input. Please try again.")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "new york city", answer)
	assert.Equal(t, 3, strings.Count(out.String(), "City? "))
	assert.Equal(t, 2, strings.Count(out.String(), "Incorrect input. Please try again."))
}

func TestAsk_LastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader("MAY"), &bytes.Buffer{})

	answer, err := p.Ask(context.Background(), "Month? ", []string{"may", "all"}, "retry")

	require.NoError(t, err)
	assert.Equal(t, "may", answer)
}

func TestAsk_InputClosed(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader("nope\n"), &bytes.Buffer{})

	_, err := p.Ask(context.Background(), "Day? ", []string{"monday"}, "retry")

	require.ErrorIs(t, err, ErrInputClosed)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestAsk_ReadError(t *testing.T) {
	t.Parallel()

	p := New(failingReader{}, &bytes.Buffer{})

	_, err := p.Ask(context.Background(), "Day? ", []string{"monday"}, "retry")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "yes", input: "yes\n", expected: true},
		{name: "upper-case yes", input: "YES\n", expected: true},
		{name: "no", input: "no\n", expected: false},
		{name: "garbage then no", input: "y\nnope\nNo\n", expected: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := New(strings.NewReader(tc.input), &bytes.Buffer{})

			got, err := p.Confirm(context.Background(), "Again? ", "Please type 'yes' or 'no'.")

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
