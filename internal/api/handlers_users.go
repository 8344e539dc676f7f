package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/weekmark/internal/services"
)

func (handler *Handler) UpsertUser(c *fiber.Ctx) error {
	payload := userPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.users.Upsert(services.UserInput{
		UID:      payload.UID,
		Name:     payload.Name,
		Email:    payload.Email,
		PhotoURL: payload.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingUserField) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return storageError(c, "Failed to save user", err)
	}

	return c.JSON(user)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	user, err := handler.users.Get(c.Params("uid"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusNotFound, "User not found")
		}
		return storageError(c, "Failed to get user", err)
	}

	return c.JSON(user)
}
