package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/weekmark/internal/services"
)

func (handler *Handler) ListTimetable(c *fiber.Ctx) error {
	entries, err := handler.timetable.ListCurrentWeek(c.Params("userId"))
	if err != nil {
		return storageError(c, "Failed to get timetable entries", err)
	}

	return c.JSON(entries)
}

func (handler *Handler) CreateTimetableEntry(c *fiber.Ctx) error {
	payload := entryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.timetable.Create(services.EntryInput{
		UserID: payload.UserID,
		Action: payload.Action,
		Status: payload.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateAction) {
			return apiError(c, fiber.StatusBadRequest, "Action already exists for this week")
		}
		if errors.Is(err, services.ErrMissingEntryField) || errors.Is(err, services.ErrInvalidStatusValue) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return storageError(c, "Failed to add timetable entry", err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateTimetableEntry(c *fiber.Ctx) error {
	payload := statusPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.timetable.Update(c.Params("id"), payload.Status)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "Timetable entry not found for this week")
		}
		if errors.Is(err, services.ErrInvalidStatusValue) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return storageError(c, "Failed to update timetable entry", err)
	}

	return c.JSON(entry)
}

func (handler *Handler) DeleteTimetableEntry(c *fiber.Ctx) error {
	if err := handler.timetable.Delete(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "Timetable entry not found for this week")
		}
		return storageError(c, "Failed to delete timetable entry", err)
	}

	return c.JSON(fiber.Map{"message": "Timetable entry deleted successfully"})
}
