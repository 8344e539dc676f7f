package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/weekmark/internal/models"
)

// MemoryStore is the volatile fallback backend: plain slices guarded by a
// mutex, created empty at startup and lost on restart. It holds no reference
// to the durable store and never synchronizes with it.
type MemoryStore struct {
	mu      sync.Mutex
	users   []models.User
	entries []models.TimetableEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make([]models.User, 0),
		entries: make([]models.TimetableEntry, 0),
	}
}

func (store *MemoryStore) Kind() string {
	return KindVolatile
}

func (store *MemoryStore) FindUserByUID(uid string) (models.User, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, user := range store.users {
		if user.UID == uid {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (store *MemoryStore) CreateUser(user *models.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	store.users = append(store.users, *user)
	return nil
}

func (store *MemoryStore) SaveUser(user *models.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	user.UpdatedAt = time.Now()
	for index := range store.users {
		if store.users[index].UID == user.UID {
			store.users[index] = *user
			return nil
		}
	}
	store.users = append(store.users, *user)
	return nil
}

func (store *MemoryStore) ListEntriesForWeek(userID string, weekStart time.Time) ([]models.TimetableEntry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	matches := make([]models.TimetableEntry, 0)
	for _, entry := range store.entries {
		if entry.UserID == userID && entry.WeekStart.Equal(weekStart) {
			matches = append(matches, detachedEntry(entry))
		}
	}
	return matches, nil
}

func (store *MemoryStore) FindEntryByKey(userID string, action string, weekStart time.Time) (models.TimetableEntry, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexByKey(userID, action, weekStart)
	if index == -1 {
		return models.TimetableEntry{}, false, nil
	}
	return detachedEntry(store.entries[index]), true, nil
}

func (store *MemoryStore) FindEntryForWeek(id string, weekStart time.Time) (models.TimetableEntry, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexByIDAndWeek(id, weekStart)
	if index == -1 {
		return models.TimetableEntry{}, false, nil
	}
	return detachedEntry(store.entries[index]), true, nil
}

// CreateEntry performs the duplicate check and the insert under one lock so
// concurrent creates for the same key cannot both pass.
func (store *MemoryStore) CreateEntry(entry *models.TimetableEntry) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.indexByKey(entry.UserID, entry.Action, entry.WeekStart) != -1 {
		return ErrDuplicateEntry
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	store.entries = append(store.entries, detachedEntry(*entry))
	return nil
}

func (store *MemoryStore) SaveEntry(entry *models.TimetableEntry) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry.UpdatedAt = time.Now()
	for index := range store.entries {
		if store.entries[index].ID == entry.ID {
			store.entries[index] = detachedEntry(*entry)
			return nil
		}
	}
	store.entries = append(store.entries, detachedEntry(*entry))
	return nil
}

func (store *MemoryStore) DeleteEntryForWeek(id string, weekStart time.Time) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexByIDAndWeek(id, weekStart)
	if index == -1 {
		return false, nil
	}
	store.entries = append(store.entries[:index], store.entries[index+1:]...)
	return true, nil
}

// detachedEntry severs the status pointers so neither callers nor the store
// can mutate the other's copy.
func detachedEntry(entry models.TimetableEntry) models.TimetableEntry {
	entry.Status = entry.Status.Clone()
	return entry
}

func (store *MemoryStore) indexByKey(userID string, action string, weekStart time.Time) int {
	for index, entry := range store.entries {
		if entry.UserID == userID && entry.Action == action && entry.WeekStart.Equal(weekStart) {
			return index
		}
	}
	return -1
}

func (store *MemoryStore) indexByIDAndWeek(id string, weekStart time.Time) int {
	for index, entry := range store.entries {
		if entry.ID == id && entry.WeekStart.Equal(weekStart) {
			return index
		}
	}
	return -1
}
