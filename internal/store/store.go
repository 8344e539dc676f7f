package store

import (
	"errors"
	"time"

	"github.com/terraincognita07/weekmark/internal/models"
)

const (
	KindDurable  = "durable"
	KindVolatile = "volatile"
)

// ErrDuplicateEntry is returned by CreateEntry when an entry with the same
// (userID, action, weekStart) triple already exists in the backend.
var ErrDuplicateEntry = errors.New("duplicate timetable entry")

// RecordStore is the backend contract shared by the durable and volatile
// implementations. Every operation must behave identically on both, so the
// services never care which one is active.
type RecordStore interface {
	Kind() string

	FindUserByUID(uid string) (models.User, bool, error)
	CreateUser(user *models.User) error
	SaveUser(user *models.User) error

	ListEntriesForWeek(userID string, weekStart time.Time) ([]models.TimetableEntry, error)
	FindEntryByKey(userID string, action string, weekStart time.Time) (models.TimetableEntry, bool, error)
	FindEntryForWeek(id string, weekStart time.Time) (models.TimetableEntry, bool, error)
	CreateEntry(entry *models.TimetableEntry) error
	SaveEntry(entry *models.TimetableEntry) error
	DeleteEntryForWeek(id string, weekStart time.Time) (bool, error)
}
