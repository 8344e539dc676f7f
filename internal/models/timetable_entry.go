package models

import "time"

const (
	StatusYes = "yes"
	StatusNo  = "no"
)

// WeekStatus maps every weekday to "yes", "no" or null. Pointer fields keep
// all seven keys present in JSON with null for unset days.
type WeekStatus struct {
	Monday    *string `json:"Monday"`
	Tuesday   *string `json:"Tuesday"`
	Wednesday *string `json:"Wednesday"`
	Thursday  *string `json:"Thursday"`
	Friday    *string `json:"Friday"`
	Saturday  *string `json:"Saturday"`
	Sunday    *string `json:"Sunday"`
}

// Days returns the weekday values in Monday-first order.
func (status WeekStatus) Days() []*string {
	return []*string{
		status.Monday,
		status.Tuesday,
		status.Wednesday,
		status.Thursday,
		status.Friday,
		status.Saturday,
		status.Sunday,
	}
}

// Clone returns a copy that shares no pointers with the receiver.
func (status WeekStatus) Clone() WeekStatus {
	return WeekStatus{
		Monday:    cloneDay(status.Monday),
		Tuesday:   cloneDay(status.Tuesday),
		Wednesday: cloneDay(status.Wednesday),
		Thursday:  cloneDay(status.Thursday),
		Friday:    cloneDay(status.Friday),
		Saturday:  cloneDay(status.Saturday),
		Sunday:    cloneDay(status.Sunday),
	}
}

func cloneDay(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

// TimetableEntry records one tracked action for one user within one week.
// WeekStart is always the Monday of that week at local midnight; the
// (user_id, action, week_start) triple is unique per backend.
type TimetableEntry struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"not null;uniqueIndex:uidx_user_action_week" json:"userId"`
	Action    string     `gorm:"not null;uniqueIndex:uidx_user_action_week" json:"action"`
	WeekStart time.Time  `gorm:"not null;uniqueIndex:uidx_user_action_week" json:"weekStart"`
	Status    WeekStatus `gorm:"serializer:json" json:"status"`
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"not null" json:"updatedAt"`
}
