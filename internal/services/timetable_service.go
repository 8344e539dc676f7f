package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/weekmark/internal/models"
	"github.com/terraincognita07/weekmark/internal/store"
)

var (
	ErrEntryNotFound     = errors.New("timetable entry not found for this week")
	ErrDuplicateAction   = errors.New("action already exists for this week")
	ErrMissingEntryField = errors.New("missing required entry field")
)

type EntryInput struct {
	UserID string
	Action string
	Status models.WeekStatus
}

// TimetableService scopes every operation to the current week window. The
// clock is injectable so week-boundary behavior can be tested without
// waiting for Monday.
type TimetableService struct {
	stores   StoreSelector
	location *time.Location
	now      func() time.Time
}

func NewTimetableService(stores StoreSelector, location *time.Location) *TimetableService {
	return NewTimetableServiceWithClock(stores, location, time.Now)
}

// NewTimetableServiceWithClock lets callers control the instant the week
// window is computed from.
func NewTimetableServiceWithClock(stores StoreSelector, location *time.Location, now func() time.Time) *TimetableService {
	if location == nil {
		location = time.UTC
	}
	return &TimetableService{
		stores:   stores,
		location: location,
		now:      now,
	}
}

// ListCurrentWeek returns the user's entries for the current week. No
// matches is an empty slice, not an error.
func (service *TimetableService) ListCurrentWeek(userID string) ([]models.TimetableEntry, error) {
	weekStart := WeekStart(service.now(), service.location)

	entries, err := service.stores.Active().ListEntriesForWeek(userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("list timetable entries: %w", err)
	}
	return entries, nil
}

// Create stores a new entry for the current week. A second entry with the
// same (userID, action, weekStart) triple is rejected and leaves the store
// unchanged.
func (service *TimetableService) Create(input EntryInput) (models.TimetableEntry, error) {
	if err := validateEntryInput(input); err != nil {
		return models.TimetableEntry{}, err
	}
	if err := ValidateWeekStatus(input.Status); err != nil {
		return models.TimetableEntry{}, err
	}

	backend := service.stores.Active()
	weekStart := WeekStart(service.now(), service.location)

	_, exists, err := backend.FindEntryByKey(input.UserID, input.Action, weekStart)
	if err != nil {
		return models.TimetableEntry{}, fmt.Errorf("check duplicate entry: %w", err)
	}
	if exists {
		return models.TimetableEntry{}, ErrDuplicateAction
	}

	entry := models.TimetableEntry{
		UserID:    input.UserID,
		Action:    input.Action,
		WeekStart: weekStart,
		Status:    input.Status,
	}
	if err := backend.CreateEntry(&entry); err != nil {
		// The pre-check can lose a race; the backend's own uniqueness
		// guarantee is authoritative.
		if errors.Is(err, store.ErrDuplicateEntry) {
			return models.TimetableEntry{}, ErrDuplicateAction
		}
		return models.TimetableEntry{}, fmt.Errorf("create timetable entry: %w", err)
	}
	return entry, nil
}

// Update replaces the status wholesale on an entry belonging to the current
// week. An id that matches an entry from a past week is treated as not
// found; that is the stale-edit guard, not a lookup bug.
func (service *TimetableService) Update(entryID string, status models.WeekStatus) (models.TimetableEntry, error) {
	if err := ValidateWeekStatus(status); err != nil {
		return models.TimetableEntry{}, err
	}

	backend := service.stores.Active()
	weekStart := WeekStart(service.now(), service.location)

	entry, found, err := backend.FindEntryForWeek(entryID, weekStart)
	if err != nil {
		return models.TimetableEntry{}, fmt.Errorf("find timetable entry: %w", err)
	}
	if !found {
		return models.TimetableEntry{}, ErrEntryNotFound
	}

	entry.Status = status
	if err := backend.SaveEntry(&entry); err != nil {
		return models.TimetableEntry{}, fmt.Errorf("update timetable entry: %w", err)
	}
	return entry, nil
}

// Delete removes an entry of the current week permanently. Week scoping
// matches Update.
func (service *TimetableService) Delete(entryID string) error {
	backend := service.stores.Active()
	weekStart := WeekStart(service.now(), service.location)

	deleted, err := backend.DeleteEntryForWeek(entryID, weekStart)
	if err != nil {
		return fmt.Errorf("delete timetable entry: %w", err)
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}

func validateEntryInput(input EntryInput) error {
	if strings.TrimSpace(input.UserID) == "" {
		return fmt.Errorf("%w: userId", ErrMissingEntryField)
	}
	if strings.TrimSpace(input.Action) == "" {
		return fmt.Errorf("%w: action", ErrMissingEntryField)
	}
	return nil
}
