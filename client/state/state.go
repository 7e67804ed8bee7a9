// Package state holds the client-side cache of habits, check-ins and
// summary stats, updated only through Reduce.
package state

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"habitrack/client/api"
	"habitrack/shared/date"
)

type State struct {
	Habits   []api.Habit
	Checkins map[Key]Status
	Summary  *api.Summary
	Loading  bool
	Err      string
}

func Initial() State {
	return State{Checkins: map[Key]Status{}}
}

// StatusOf returns StatusUnset when nothing is cached for the pair.
func (s State) StatusOf(habitID int64, day date.Date) Status {
	return s.Checkins[NewKey(habitID, day)]
}

// Action is one of the types declared below.
type Action interface {
	action()
}

type (
	SetLoading struct{ Loading bool }
	SetError   struct{ Err string }
	SetHabits  struct{ Habits []api.Habit }
	AddHabit   struct{ Habit api.Habit }
	// DeleteHabit also drops every cached check-in of the habit.
	DeleteHabit struct{ HabitID int64 }
	// SetCheckins replaces the habit's cached statuses inside Range with the
	// fetched rows. A zero Range only merges.
	SetCheckins struct {
		HabitID  int64
		Range    date.Range
		Checkins []api.Checkin
	}
	// UpdateCheckin stores the server's status. StatusUnset removes the key.
	UpdateCheckin struct {
		HabitID int64
		Date    date.Date
		Status  Status
	}
	SetSummary struct{ Summary api.Summary }
)

func (SetLoading) action()    {}
func (SetError) action()      {}
func (SetHabits) action()     {}
func (AddHabit) action()      {}
func (DeleteHabit) action()   {}
func (SetCheckins) action()   {}
func (UpdateCheckin) action() {}
func (SetSummary) action()    {}

// Reduce never mutates s; slices and the check-in map are copied on write.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetLoading:
		s.Loading = act.Loading
	case SetError:
		s.Err = act.Err
		s.Loading = false
	case SetHabits:
		s.Habits = append([]api.Habit(nil), act.Habits...)
		s.Loading = false
	case AddHabit:
		s.Habits = append([]api.Habit{act.Habit}, s.Habits...)
		s.Loading = false
	case DeleteHabit:
		habits := make([]api.Habit, 0, len(s.Habits))
		for _, habit := range s.Habits {
			if habit.ID != act.HabitID {
				habits = append(habits, habit)
			}
		}

		prefix := strconv.FormatInt(act.HabitID, 10) + "-"
		checkins := make(map[Key]Status, len(s.Checkins))
		for key, status := range s.Checkins {
			if !strings.HasPrefix(string(key), prefix) {
				checkins[key] = status
			}
		}

		s.Habits = habits
		s.Checkins = checkins
		s.Loading = false
	case SetCheckins:
		checkins := maps.Clone(s.Checkins)
		if checkins == nil {
			checkins = make(map[Key]Status, len(act.Checkins))
		}

		if !act.Range.Start.IsZero() {
			for _, day := range act.Range.Days() {
				delete(checkins, NewKey(act.HabitID, day))
			}
		}

		for _, checkin := range act.Checkins {
			checkins[NewKey(act.HabitID, checkin.Date)] = Status(checkin.Status)
		}

		s.Checkins = checkins
		s.Loading = false
	case UpdateCheckin:
		checkins := maps.Clone(s.Checkins)
		if checkins == nil {
			checkins = map[Key]Status{}
		}

		key := NewKey(act.HabitID, act.Date)
		if act.Status == StatusUnset {
			delete(checkins, key)
		} else {
			checkins[key] = act.Status
		}

		s.Checkins = checkins
		s.Loading = false
	case SetSummary:
		summary := act.Summary
		s.Summary = &summary
		s.Loading = false
	}

	return s
}

// Store serializes dispatches so the TUI and background fetches can share it.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners []func(State)
}

func NewStore() *Store {
	return &Store{state: Initial()}
}

func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(next)
	}

	return next
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Subscribe registers fn to run after every dispatch.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}
