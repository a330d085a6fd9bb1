package db

import (
	"time"

	"github.com/mirelleva/lunara/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) ListByUserStartDesc(userID uint) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

// FindPreviousByStart returns the user's cycle with the greatest start date
// strictly before the given one, or found=false when no earlier cycle exists.
func (repo *CycleRepository) FindPreviousByStart(userID uint, start time.Time) (models.Cycle, bool, error) {
	var cycle models.Cycle
	result := repo.database.
		Where("user_id = ? AND start_date < ?", userID, start).
		Order("start_date DESC, id DESC").
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Cycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *CycleRepository) FindByIDAndUser(cycleID uint, userID uint) (models.Cycle, bool, error) {
	var cycle models.Cycle
	result := repo.database.
		Where("id = ? AND user_id = ?", cycleID, userID).
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Cycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *CycleRepository) Create(cycle *models.Cycle) error {
	return repo.database.Create(cycle).Error
}

// UpdateDates rewrites the date range and duration of a cycle owned by the
// given user. The stored gap snapshot is deliberately left untouched. The
// returned count is zero when no owned record matched.
func (repo *CycleRepository) UpdateDates(cycleID uint, userID uint, start time.Time, end time.Time, durationDays int) (int64, error) {
	result := repo.database.Model(&models.Cycle{}).
		Where("id = ? AND user_id = ?", cycleID, userID).
		Updates(map[string]any{
			"start_date":           start,
			"end_date":             end,
			"period_duration_days": durationDays,
		})
	return result.RowsAffected, result.Error
}

func (repo *CycleRepository) DeleteByIDAndUser(cycleID uint, userID uint) (int64, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", cycleID, userID).
		Delete(&models.Cycle{})
	return result.RowsAffected, result.Error
}
