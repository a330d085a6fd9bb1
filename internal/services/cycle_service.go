package services

import (
	"math"
	"time"

	"github.com/mirelleva/lunara/internal/models"
)

const dayDuration = 24 * time.Hour

type CycleRepository interface {
	ListByUserStartDesc(userID uint) ([]models.Cycle, error)
	FindPreviousByStart(userID uint, start time.Time) (models.Cycle, bool, error)
	FindByIDAndUser(cycleID uint, userID uint) (models.Cycle, bool, error)
	Create(cycle *models.Cycle) error
	UpdateDates(cycleID uint, userID uint, start time.Time, end time.Time, durationDays int) (int64, error)
	DeleteByIDAndUser(cycleID uint, userID uint) (int64, error)
}

type CycleService struct {
	cycles CycleRepository
}

func NewCycleService(cycles CycleRepository) *CycleService {
	return &CycleService{cycles: cycles}
}

func (service *CycleService) List(userID uint) ([]models.Cycle, error) {
	return service.cycles.ListByUserStartDesc(userID)
}

// Create validates the date range, derives the inclusive period duration and
// the gap to the most recent strictly earlier cycle of the same user, then
// persists the record. The gap is a one-time snapshot: cycles inserted or
// removed later never trigger a recompute, neither on this record nor on any
// later-dated one.
func (service *CycleService) Create(userID uint, startRaw string, endRaw string) (models.Cycle, error) {
	start, end, err := ParseDateRange(startRaw, endRaw)
	if err != nil {
		return models.Cycle{}, err
	}

	cycle := models.Cycle{
		UserID:             userID,
		StartDate:          start,
		EndDate:            end,
		PeriodDurationDays: inclusiveDayCount(start, end),
	}

	previous, found, err := service.cycles.FindPreviousByStart(userID, start)
	if err != nil {
		return models.Cycle{}, err
	}
	if found {
		gap := wholeDaysBetween(previous.StartDate, start)
		cycle.GapSincePrevStartDays = &gap
	}

	if err := service.cycles.Create(&cycle); err != nil {
		return models.Cycle{}, err
	}
	return cycle, nil
}

// Edit recomputes the duration from the new dates. The stored gap snapshot is
// left as computed at creation time, even when the new start date would pick
// a different previous cycle.
func (service *CycleService) Edit(cycleID uint, userID uint, startRaw string, endRaw string) (models.Cycle, error) {
	start, end, err := ParseDateRange(startRaw, endRaw)
	if err != nil {
		return models.Cycle{}, err
	}

	affected, err := service.cycles.UpdateDates(cycleID, userID, start, end, inclusiveDayCount(start, end))
	if err != nil {
		return models.Cycle{}, err
	}
	if affected == 0 {
		return models.Cycle{}, ErrCycleNotFound
	}

	updated, found, err := service.cycles.FindByIDAndUser(cycleID, userID)
	if err != nil {
		return models.Cycle{}, err
	}
	if !found {
		return models.Cycle{}, ErrCycleNotFound
	}
	return updated, nil
}

func (service *CycleService) Delete(cycleID uint, userID uint) error {
	affected, err := service.cycles.DeleteByIDAndUser(cycleID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCycleNotFound
	}
	return nil
}

func inclusiveDayCount(start time.Time, end time.Time) int {
	return wholeDaysBetween(start, end) + 1
}

func wholeDaysBetween(from time.Time, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / dayDuration.Hours()))
}
