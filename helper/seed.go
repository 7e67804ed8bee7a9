package helper

import (
	"context"
	"fmt"
	checkinModel "habitrack/internal/domains/checkin/model"
	checkinRepo "habitrack/internal/domains/checkin/repository"
	habitModel "habitrack/internal/domains/habit/model"
	habitRepo "habitrack/internal/domains/habit/repository"
	"habitrack/shared/date"
	gModel "habitrack/shared/model"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	SeedDays = 21

	seedMissedShare     = 0.15
	seedWeekendModifier = 0.9
)

type seedHabit struct {
	name        string
	description string
	rate        float64
}

var seedHabits = []seedHabit{
	{"Morning Meditation", "Start each day with 10 minutes of mindfulness meditation to center myself and set positive intentions.", 0.85},
	{"Read 30 Minutes Daily", "Dedicate time to reading books that inspire growth, whether fiction, non-fiction, or professional development.", 0.75},
	{"Drink 8 Glasses of Water", "Stay properly hydrated throughout the day for better energy, focus, and overall health.", 0.90},
	{"Exercise for 45 Minutes", "Maintain physical fitness through varied workouts including cardio, strength training, or yoga.", 0.65},
	{"Write in Journal", "Reflect on daily experiences, thoughts, and goals through consistent journaling practice.", 0.70},
	{"Learn Spanish Vocabulary", "Study 20 new Spanish words daily using flashcards and language learning apps.", 0.60},
	{"No Social Media Before Noon", "Avoid mindless scrolling in the morning to maintain focus and productivity during peak hours.", 0.55},
	{"Practice Gratitude", "Write down three things I'm grateful for each day to cultivate a positive mindset.", 0.80},
}

type SeedResult struct {
	Habits   int
	Checkins int
	Done     int
	Missed   int
}

// Seeder replaces the store content with demo habits and SeedDays of
// randomized history ending today.
type Seeder struct {
	Habits   habitRepo.Habit
	Checkins checkinRepo.Checkin
	Rand     *rand.Rand
	Today    date.Date
}

func NewSeeder(habits habitRepo.Habit, checkins checkinRepo.Checkin, seed uint64) *Seeder {
	return &Seeder{
		Habits:   habits,
		Checkins: checkins,
		Rand:     rand.New(rand.NewPCG(seed, seed)), //nolint:gosec
		Today:    date.Of(time.Now()),
	}
}

func (s *Seeder) Run(ctx context.Context) (SeedResult, error) {
	res := SeedResult{}

	if _, err := s.Checkins.Clear(ctx); err != nil {
		return res, fmt.Errorf("clearing check-ins: %w", err)
	}

	if _, err := s.Habits.Clear(ctx); err != nil {
		return res, fmt.Errorf("clearing habits: %w", err)
	}

	log.Info().Msg("Cleared existing data")

	for _, sample := range seedHabits {
		habit, err := s.Habits.Insert(ctx, habitModel.Habit{
			Name:        sample.name,
			Description: sample.description,
			Metadata:    gModel.Metadata{CreatedAt: gModel.Now()},
		})
		if err != nil {
			return res, fmt.Errorf("inserting habit %q: %w", sample.name, err)
		}

		res.Habits++

		checkins := s.history(habit.ID, sample.rate)
		if len(checkins) > 0 {
			if err = s.Checkins.InsertBulk(ctx, checkins); err != nil {
				return res, fmt.Errorf("inserting check-ins for %q: %w", sample.name, err)
			}
		}

		for _, checkin := range checkins {
			if checkin.Status == checkinModel.StatusDone {
				res.Done++
			} else {
				res.Missed++
			}
		}

		res.Checkins += len(checkins)

		log.Info().Str("habit", sample.name).Int("checkins", len(checkins)).Msg("Added habit")
	}

	return res, nil
}

// history draws one outcome per day: done with the habit's rate (lower on
// weekends), missed with a fixed share above that, untracked otherwise.
func (s *Seeder) history(habitID int64, rate float64) []checkinModel.Checkin {
	checkins := []checkinModel.Checkin{}

	for i := SeedDays - 1; i >= 0; i-- {
		day := s.Today.AddDays(-i)

		adjusted := rate
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			adjusted *= seedWeekendModifier
		}

		var status checkinModel.Status

		switch roll := s.Rand.Float64(); {
		case roll < adjusted:
			status = checkinModel.StatusDone
		case roll < adjusted+seedMissedShare:
			status = checkinModel.StatusMissed
		default:
			continue
		}

		checkins = append(checkins, checkinModel.Checkin{
			HabitID:  habitID,
			Date:     day,
			Status:   status,
			Metadata: gModel.Metadata{CreatedAt: gModel.Now()},
		})
	}

	return checkins
}
