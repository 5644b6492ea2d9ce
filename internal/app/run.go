package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/dataset"
	"github.com/specialistvlad/bikeshare/internal/filter"
	"github.com/specialistvlad/bikeshare/internal/prompt"
	"github.com/specialistvlad/bikeshare/internal/session"
	"github.com/specialistvlad/bikeshare/internal/stats"
)

// User-facing texts of the interaction loop.
const (
	Greeting       = "Hello! Let's explore some US bikeshare data!"
	InvalidAnswer  = "Incorrect input. Please try again."
	MonthQuestion  = "Which month? (all, january, february, ... , june): "
	DayQuestion    = "Which day? (all, monday, tuesday, ... sunday): "
	RestartPrompt  = "\nWould you like to restart the program? (yes/no): "
	RestartRetry   = "Invalid input. Please type 'yes' or 'no'."
	Farewell       = "Thank you for using the program. Goodbye!"
	LoadFailedNote = "Could not load the trip data:"
)

// Run drives the interaction loop until the user declines a restart or the
// input ends.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	for id := 1; ; id++ {
		err := a.runSession(ctx, id)
		again := false
		if err == nil {
			again, err = a.prompter.Confirm(ctx, RestartPrompt, RestartRetry)
		}

		switch {
		case errors.Is(err, prompt.ErrInputClosed):
			a.logger.Info("Input closed, terminating.", "session", id)
		case err != nil:
			return fmt.Errorf("session %d: %w", id, err)
		case again:
			a.logger.Debug("Restarting.", "next_session", id+1)
			continue
		}

		fmt.Fprintln(a.outW, Farewell)
		a.logger.Debug("App.Run method finished.", "sessions", id)
		return nil
	}
}

// runSession performs one CollectFilters → Load → Report → Page pass.
// A dataset that fails to load is reported to the user and ends the pass
// without statistics.
func (a *App) runSession(ctx context.Context, id int) error {
	logger := ctxlog.FromContext(ctx).With("session", id)

	criteria, err := a.collectFilters(ctx)
	if err != nil {
		return err
	}
	logger.Debug("Filters collected.", "city", criteria.City, "month", criteria.Month, "day", criteria.Day)

	s := session.New(id, criteria)
	if err := s.Load(ctx, a.loader); err != nil {
		var loadErr *dataset.LoadError
		if !errors.As(err, &loadErr) {
			return err
		}
		logger.Error("Dataset load failed.", "error", err)
		fmt.Fprintln(a.outW, LoadFailedNote, loadErr)
		fmt.Fprintln(a.outW, stats.Separator)
		return nil
	}

	for _, r := range a.reporters {
		r.Report(ctx, a.outW, s.Dataset())
	}

	return s.Pager().Run(ctx, a.prompter, a.outW)
}

// collectFilters greets the user and asks for city, month and day.
func (a *App) collectFilters(ctx context.Context) (filter.Criteria, error) {
	fmt.Fprintln(a.outW, Greeting)

	cityNames := a.cities.CityNames()
	cityQuestion := fmt.Sprintf("Which city would you like to explore? (%s): ", strings.Join(cityNames, ", "))
	city, err := a.prompter.Ask(ctx, cityQuestion, cityNames, InvalidAnswer)
	if err != nil {
		return filter.Criteria{}, err
	}
	month, err := a.prompter.Ask(ctx, MonthQuestion, filter.MonthChoices(), InvalidAnswer)
	if err != nil {
		return filter.Criteria{}, err
	}
	day, err := a.prompter.Ask(ctx, DayQuestion, filter.DayChoices(), InvalidAnswer)
	if err != nil {
		return filter.Criteria{}, err
	}

	fmt.Fprintln(a.outW, stats.Separator)
	return filter.Criteria{City: city, Month: month, Day: day}, nil
}
