package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/weekmark/internal/models"
	"gorm.io/gorm"
)

// DurableStore persists records through gorm. The schema carries a unique
// compound index on (user_id, action, week_start), so concurrent creates for
// the same key cannot both succeed even without an explicit lock.
type DurableStore struct {
	database *gorm.DB
	sqlDB    *sql.DB
}

func NewDurableStore(database *gorm.DB) (*DurableStore, error) {
	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("resolve sql db: %w", err)
	}
	return &DurableStore{database: database, sqlDB: sqlDB}, nil
}

func (store *DurableStore) Kind() string {
	return KindDurable
}

// Alive reports the driver's live connection state, not a cached startup
// decision.
func (store *DurableStore) Alive() bool {
	return store.sqlDB.Ping() == nil
}

func (store *DurableStore) Close() error {
	return store.sqlDB.Close()
}

func (store *DurableStore) FindUserByUID(uid string) (models.User, bool, error) {
	user := models.User{}
	result := store.database.Where("uid = ?", uid).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (store *DurableStore) CreateUser(user *models.User) error {
	return store.database.Create(user).Error
}

func (store *DurableStore) SaveUser(user *models.User) error {
	return store.database.Save(user).Error
}

func (store *DurableStore) ListEntriesForWeek(userID string, weekStart time.Time) ([]models.TimetableEntry, error) {
	entries := make([]models.TimetableEntry, 0)
	if err := store.database.
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (store *DurableStore) FindEntryByKey(userID string, action string, weekStart time.Time) (models.TimetableEntry, bool, error) {
	entry := models.TimetableEntry{}
	result := store.database.
		Where("user_id = ? AND action = ? AND week_start = ?", userID, action, weekStart).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.TimetableEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TimetableEntry{}, false, nil
	}
	return entry, true, nil
}

func (store *DurableStore) FindEntryForWeek(id string, weekStart time.Time) (models.TimetableEntry, bool, error) {
	entry := models.TimetableEntry{}
	result := store.database.
		Where("id = ? AND week_start = ?", id, weekStart).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.TimetableEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TimetableEntry{}, false, nil
	}
	return entry, true, nil
}

func (store *DurableStore) CreateEntry(entry *models.TimetableEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := store.database.Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEntry
		}
		return err
	}
	return nil
}

func (store *DurableStore) SaveEntry(entry *models.TimetableEntry) error {
	return store.database.Save(entry).Error
}

func (store *DurableStore) DeleteEntryForWeek(id string, weekStart time.Time) (bool, error) {
	result := store.database.
		Where("id = ? AND week_start = ?", id, weekStart).
		Delete(&models.TimetableEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
