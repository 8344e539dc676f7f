package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/health", handler.Health)

	users := api.Group("/users")
	users.Post("", handler.UpsertUser)
	users.Get("/:uid", handler.GetUser)

	timetable := api.Group("/timetable")
	timetable.Get("/:userId", handler.ListTimetable)
	timetable.Post("", handler.CreateTimetableEntry)
	timetable.Put("/:id", handler.UpdateTimetableEntry)
	timetable.Delete("/:id", handler.DeleteTimetableEntry)
}
