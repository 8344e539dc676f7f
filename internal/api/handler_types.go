package api

import "github.com/terraincognita07/weekmark/internal/services"

type Handler struct {
	users     *services.UserService
	timetable *services.TimetableService
	stores    services.StoreSelector
}

func NewHandler(users *services.UserService, timetable *services.TimetableService, stores services.StoreSelector) *Handler {
	return &Handler{
		users:     users,
		timetable: timetable,
		stores:    stores,
	}
}
