package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/weekmark/internal/models"
	"github.com/terraincognita07/weekmark/internal/store"
)

// testClock pins the timetable service to a controllable instant.
type testClock struct {
	current time.Time
}

func (clock *testClock) Now() time.Time {
	return clock.current
}

func newMemoryTimetableService(t *testing.T, start time.Time) (*TimetableService, *testClock) {
	t.Helper()
	clock := &testClock{current: start}
	selector := fixedSelector{backend: store.NewMemoryStore()}
	return NewTimetableServiceWithClock(selector, time.UTC, clock.Now), clock
}

var midWeek = time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC) // Wednesday

func TestCreateAssignsIdentityAndWeekStart(t *testing.T) {
	service, _ := newMemoryTimetableService(t, midWeek)

	entry, err := service.Create(EntryInput{
		UserID: "u1",
		Action: "gym",
		Status: models.WeekStatus{Monday: strPtr(models.StatusYes)},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if entry.ID == "" {
		t.Fatalf("expected backend-assigned id")
	}
	wantWeek := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if !entry.WeekStart.Equal(wantWeek) {
		t.Fatalf("expected weekStart %s, got %s", wantWeek, entry.WeekStart)
	}
	if entry.CreatedAt.IsZero() || entry.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps on create")
	}
}

func TestCreateRejectsDuplicateActionInSameWeek(t *testing.T) {
	service, _ := newMemoryTimetableService(t, midWeek)

	input := EntryInput{UserID: "u1", Action: "gym", Status: models.WeekStatus{Monday: strPtr(models.StatusYes)}}
	if _, err := service.Create(input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := service.Create(input); !errors.Is(err, ErrDuplicateAction) {
		t.Fatalf("expected ErrDuplicateAction, got %v", err)
	}

	entries, err := service.ListCurrentWeek("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected the store unchanged after rejected duplicate, got %d entries", len(entries))
	}
}

func TestCreateAllowsSameActionNextWeek(t *testing.T) {
	service, clock := newMemoryTimetableService(t, midWeek)

	input := EntryInput{UserID: "u1", Action: "gym"}
	if _, err := service.Create(input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	clock.current = clock.current.AddDate(0, 0, 7)
	if _, err := service.Create(input); err != nil {
		t.Fatalf("create in next week: %v", err)
	}
}

func TestCreateValidatesInput(t *testing.T) {
	service, _ := newMemoryTimetableService(t, midWeek)

	if _, err := service.Create(EntryInput{Action: "gym"}); !errors.Is(err, ErrMissingEntryField) {
		t.Fatalf("expected ErrMissingEntryField for missing userId, got %v", err)
	}
	if _, err := service.Create(EntryInput{UserID: "u1"}); !errors.Is(err, ErrMissingEntryField) {
		t.Fatalf("expected ErrMissingEntryField for missing action, got %v", err)
	}
	if _, err := service.Create(EntryInput{
		UserID: "u1",
		Action: "gym",
		Status: models.WeekStatus{Tuesday: strPtr("perhaps")},
	}); !errors.Is(err, ErrInvalidStatusValue) {
		t.Fatalf("expected ErrInvalidStatusValue, got %v", err)
	}
}

func TestUpdateReplacesStatusWholesale(t *testing.T) {
	service, _ := newMemoryTimetableService(t, midWeek)

	created, err := service.Create(EntryInput{
		UserID: "u1",
		Action: "gym",
		Status: models.WeekStatus{Monday: strPtr(models.StatusYes)},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := service.Update(created.ID, models.WeekStatus{Tuesday: strPtr(models.StatusNo)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status.Monday != nil {
		t.Fatalf("expected Monday reset to null after wholesale replace")
	}
	if updated.Status.Tuesday == nil || *updated.Status.Tuesday != models.StatusNo {
		t.Fatalf("expected Tuesday no, got %+v", updated.Status)
	}
}

func TestUpdateRejectsEntryFromPastWeek(t *testing.T) {
	service, clock := newMemoryTimetableService(t, midWeek)

	created, err := service.Create(EntryInput{UserID: "u1", Action: "gym"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	clock.current = clock.current.AddDate(0, 0, 7)
	if _, err := service.Update(created.ID, models.WeekStatus{}); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for stale entry, got %v", err)
	}
}

func TestDeleteIsWeekScopedAndPermanent(t *testing.T) {
	service, clock := newMemoryTimetableService(t, midWeek)

	created, err := service.Create(EntryInput{UserID: "u1", Action: "gym"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := service.Delete(created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := service.Delete(created.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound on second delete, got %v", err)
	}

	stale, err := service.Create(EntryInput{UserID: "u1", Action: "run"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	clock.current = clock.current.AddDate(0, 0, 7)
	if err := service.Delete(stale.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for past-week delete, got %v", err)
	}
}

func TestListCurrentWeekEmptyIsNotAnError(t *testing.T) {
	service, _ := newMemoryTimetableService(t, midWeek)

	entries, err := service.ListCurrentWeek("nobody")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty slice, got %v", entries)
	}
}

func TestListCurrentWeekExcludesOtherWeeksAndUsers(t *testing.T) {
	service, clock := newMemoryTimetableService(t, midWeek)

	if _, err := service.Create(EntryInput{UserID: "u1", Action: "gym"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Create(EntryInput{UserID: "u2", Action: "gym"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	clock.current = clock.current.AddDate(0, 0, 7)
	if _, err := service.Create(EntryInput{UserID: "u1", Action: "swim"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	entries, err := service.ListCurrentWeek("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != "swim" {
		t.Fatalf("expected only current-week entry for u1, got %+v", entries)
	}
}
