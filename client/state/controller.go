package state

import (
	"context"

	"habitrack/client/api"
	"habitrack/shared/date"

	"github.com/rs/zerolog/log"
)

const (
	errFetchHabits   = "Failed to fetch habits"
	errCreateHabit   = "Failed to create habit"
	errDeleteHabit   = "Failed to delete habit"
	errUpdateCheckin = "Failed to update check-in"
)

// Controller performs API calls and records their outcome in the store.
type Controller struct {
	backend Backend
	store   *Store
}

func NewController(backend Backend, store *Store) *Controller {
	return &Controller{backend: backend, store: store}
}

func (c *Controller) Store() *Store {
	return c.store
}

// Load fetches habits, the week around day for every habit, and the summary.
func (c *Controller) Load(ctx context.Context, day date.Date) error {
	if err := c.FetchHabits(ctx); err != nil {
		return err
	}

	c.FetchWeek(ctx, day)
	c.FetchSummary(ctx)

	return nil
}

func (c *Controller) FetchHabits(ctx context.Context) error {
	c.store.Dispatch(SetLoading{Loading: true})

	habits, err := c.backend.ListHabits(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("fetching habits")
		c.store.Dispatch(SetError{Err: errFetchHabits})

		return err
	}

	c.store.Dispatch(SetHabits{Habits: habits})

	return nil
}

func (c *Controller) CreateHabit(ctx context.Context, name, description string) (api.Habit, error) {
	if err := ValidateHabitName(name); err != nil {
		return api.Habit{}, err
	}

	c.store.Dispatch(SetLoading{Loading: true})

	habit, err := c.backend.CreateHabit(ctx, name, description)
	if err != nil {
		log.Debug().Err(err).Msg("creating habit")
		c.store.Dispatch(SetError{Err: errCreateHabit})

		return api.Habit{}, err
	}

	c.store.Dispatch(AddHabit{Habit: habit})
	c.FetchSummary(ctx)

	return habit, nil
}

func (c *Controller) DeleteHabit(ctx context.Context, id int64) error {
	c.store.Dispatch(SetLoading{Loading: true})

	if err := c.backend.DeleteHabit(ctx, id); err != nil {
		log.Debug().Err(err).Int64("habit_id", id).Msg("deleting habit")
		c.store.Dispatch(SetError{Err: errDeleteHabit})

		return err
	}

	c.store.Dispatch(DeleteHabit{HabitID: id})
	c.FetchSummary(ctx)

	return nil
}

// FetchWeek loads the Sunday..Saturday window around day for every cached
// habit. Failures are logged and leave the cache untouched.
func (c *Controller) FetchWeek(ctx context.Context, day date.Date) {
	week := date.WeekOf(day)

	for _, habit := range c.store.State().Habits {
		checkins, err := c.backend.ListCheckins(ctx, habit.ID, week.Start, week.End)
		if err != nil {
			log.Debug().Err(err).Int64("habit_id", habit.ID).Msg("fetching check-ins")

			continue
		}

		c.store.Dispatch(SetCheckins{HabitID: habit.ID, Range: week, Checkins: checkins})
	}
}

func (c *Controller) FetchSummary(ctx context.Context) {
	summary, err := c.backend.Summary(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("fetching summary")

		return
	}

	c.store.Dispatch(SetSummary{Summary: summary})
}

// Toggle advances the cell one step with a single upsert or delete and
// returns the status now stored on the server.
func (c *Controller) Toggle(ctx context.Context, habitID int64, day date.Date) (Status, error) {
	next := c.store.State().StatusOf(habitID, day).Next()

	if next == StatusUnset {
		err := c.backend.DeleteCheckin(ctx, habitID, day)
		if err != nil && !api.IsNotFound(err) {
			log.Debug().Err(err).Int64("habit_id", habitID).Msg("deleting check-in")
			c.store.Dispatch(SetError{Err: errUpdateCheckin})

			return c.store.State().StatusOf(habitID, day), err
		}

		c.store.Dispatch(UpdateCheckin{HabitID: habitID, Date: day, Status: StatusUnset})
		c.FetchSummary(ctx)

		return StatusUnset, nil
	}

	checkin, err := c.backend.UpsertCheckin(ctx, habitID, day, string(next))
	if err != nil {
		log.Debug().Err(err).Int64("habit_id", habitID).Msg("updating check-in")
		c.store.Dispatch(SetError{Err: errUpdateCheckin})

		return c.store.State().StatusOf(habitID, day), err
	}

	status := Status(checkin.Status)
	c.store.Dispatch(UpdateCheckin{HabitID: habitID, Date: day, Status: status})
	c.FetchSummary(ctx)

	return status, nil
}
