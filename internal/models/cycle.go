package models

import "time"

// Cycle is one recorded menstrual period. StartDate and EndDate carry
// midnight-UTC dates. GapSincePrevStartDays is a snapshot taken when the
// record is created and is never recomputed afterwards, even when the
// cycle or its neighbours are edited.
type Cycle struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uint      `gorm:"not null;index:idx_cycles_user_start" json:"ownerId"`
	StartDate             time.Time `gorm:"not null;index:idx_cycles_user_start" json:"startDate"`
	EndDate               time.Time `gorm:"not null" json:"endDate"`
	PeriodDurationDays    int       `gorm:"not null" json:"periodDurationDays"`
	GapSincePrevStartDays *int      `json:"gapSincePrevStartDays"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
