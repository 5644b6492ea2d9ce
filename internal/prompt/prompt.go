// Package prompt implements the one interactive primitive the application
// needs: ask a question and keep asking until the answer is in a closed set.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
)

// ErrInputClosed is returned when the input ends before a valid answer.
var ErrInputClosed = errors.New("input closed")

// Yes and No are the answers accepted by Confirm.
const (
	Yes = "yes"
	No  = "no"
)

// Prompter reads answers line by line from in and writes prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes question and reads answers until one, lowercased and trimmed,
// is in allowed. After every rejected answer retry is written. allowed must
// be lowercase. There is no retry limit.
func (p *Prompter) Ask(ctx context.Context, question string, allowed []string, retry string) (string, error) {
	logger := ctxlog.FromContext(ctx)
	for {
		fmt.Fprint(p.out, question)
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if slices.Contains(allowed, answer) {
			logger.Debug("Prompt answered.", "answer", answer)
			return answer, nil
		}
		logger.Debug("Prompt answer rejected.", "answer", answer)
		fmt.Fprintln(p.out, retry)
	}
}

// Confirm asks a yes/no question and reports whether the answer was yes.
func (p *Prompter) Confirm(ctx context.Context, question, retry string) (bool, error) {
	answer, err := p.Ask(ctx, question, []string{Yes, No}, retry)
	if err != nil {
		return false, err
	}
	return answer == Yes, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}
